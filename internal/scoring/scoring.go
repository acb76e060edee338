// Package scoring combines rate deficit, mentor penalty, recency bonus and
// carried-over debt into a single ranking score per candidate.
package scoring

import "math"

// Params holds the scorer's tuning parameters.
type Params struct {
	// Epsilon bounds the rate-deficit term: a never-assigned member has
	// currentRate 0 and scores 1/epsilon, maximal but finite.
	Epsilon float64

	// MentorPenalty multiplies the score of experienced members filling a
	// mentor role; < 1 discourages overusing them. 1 disables the penalty.
	MentorPenalty float64

	// DebtWeight scales the carried-over cross-batch imbalance.
	DebtWeight float64
}

// Input is one candidate's scoring facts for the current period.
type Input struct {
	// EffectiveAssignments is the historical snapshot plus the in-batch
	// accumulated assignment count.
	EffectiveAssignments float64

	// EffectiveDays is the historical presence snapshot plus the batch
	// periods elapsed so far times the period length in days.
	EffectiveDays float64

	// Mentor marks a candidate filling the experienced/mentor role.
	Mentor bool

	// ExpectedRecent is the assignment count the candidate would have in
	// the trailing window at the ideal rate.
	ExpectedRecent float64

	// ActualRecent is the candidate's observed count in that window.
	ActualRecent float64

	// Debt is the carried-over imbalance from earlier batches.
	Debt float64
}

// Rate returns the candidate's current effective assignment rate, zero when
// no presence has accrued.
func (in Input) Rate() float64 {
	if in.EffectiveDays <= 0 {
		return 0
	}

	return in.EffectiveAssignments / in.EffectiveDays
}

// NeverAssigned reports whether the candidate has no effective assignments
// at all. Such candidates form the maximal score class: ties among them
// break by longest presence, then by member ID.
func (in Input) NeverAssigned() bool {
	return in.EffectiveAssignments <= 0
}

// Score computes the priority score:
//
//	1/(rate+epsilon) * mentorPenalty * recencyBonus * debtBonus
//
// where recencyBonus = 1 + max(0, expectedRecent-actualRecent) boosts
// members under-represented in the trailing window, and
// debtBonus = 1 + debtWeight*debt carries forward historical imbalance.
// The result is always strictly positive so it is safe in log domain.
func Score(in Input, p Params) float64 {
	base := 1 / (in.Rate() + p.Epsilon)

	if in.Mentor && p.MentorPenalty > 0 {
		base *= p.MentorPenalty
	}

	base *= 1 + math.Max(0, in.ExpectedRecent-in.ActualRecent)

	debtBonus := 1 + p.DebtWeight*in.Debt
	// A large surplus must dampen, not invert, the score.
	if debtBonus < 0.1 {
		debtBonus = 0.1
	}

	return base * debtBonus
}
