// Package selector turns priority scores into a concrete team using
// temperature-controlled randomized ranking.
//
// At temperature zero the selection is a deterministic top-N sort; above
// zero each candidate's log score is perturbed with a scaled Gumbel sample
// drawn from an injected random source (the Gumbel-top-k trick), so higher
// temperatures blur the ranking without ever producing invalid picks.
package selector

import (
	"math"
	"slices"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// Candidate is one eligible member with its precomputed priority facts.
type Candidate struct {
	ID            string
	Priority      float64
	NeverAssigned bool
	PresenceDays  int
}

// Result is the outcome of one selection.
type Result struct {
	// Primaries are the chosen assignees in rank order.
	Primaries []string

	// Substitutes are the next-ranked members in rank order; best-effort
	// and possibly shorter than requested, or empty.
	Substitutes []string

	// Undersized reports that fewer primaries than requested were available.
	Undersized bool

	// SubstitutesShort reports that fewer substitutes than requested remained.
	SubstitutesShort bool
}

// Pick ranks the pool and returns the top primaryCount members as
// primaries and the next substituteCount as substitutes.
//
// Members of exclude are removed from the pool before ranking, never after,
// so an excluded high-priority candidate can never silently displace the
// ranking of the rest. With a pool smaller than primaryCount all available
// candidates become primaries and Undersized is set; that is a warning
// condition for the caller, not an error.
//
// Determinism: identical inputs and an identical random source sequence
// produce identical output. At temperature 0 the random source is not
// consulted at all.
func Pick(pool []Candidate, primaryCount, substituteCount int, exclude map[string]struct{}, temperature float64, rng types.RandSource) Result {
	eligible := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if _, skip := exclude[c.ID]; skip {
			continue
		}
		eligible = append(eligible, c)
	}

	// Stable pre-sort so that perturbation draws consume the random
	// sequence in a deterministic order regardless of input order.
	slices.SortFunc(eligible, compare)

	if temperature > 0 && rng != nil {
		type perturbed struct {
			cand  Candidate
			score float64
		}
		ranked := make([]perturbed, len(eligible))
		for i, c := range eligible {
			ranked[i] = perturbed{cand: c, score: math.Log(c.Priority) + temperature*gumbel(rng)}
		}
		slices.SortStableFunc(ranked, func(a, b perturbed) int {
			switch {
			case a.score > b.score:
				return -1
			case a.score < b.score:
				return 1
			default:
				return compare(a.cand, b.cand)
			}
		})
		for i := range ranked {
			eligible[i] = ranked[i].cand
		}
	}

	res := Result{}
	for i := 0; i < len(eligible) && i < primaryCount; i++ {
		res.Primaries = append(res.Primaries, eligible[i].ID)
	}
	res.Undersized = len(res.Primaries) < primaryCount

	for i := len(res.Primaries); i < len(eligible) && len(res.Substitutes) < substituteCount; i++ {
		res.Substitutes = append(res.Substitutes, eligible[i].ID)
	}
	res.SubstitutesShort = len(res.Substitutes) < substituteCount

	return res
}

// Rank returns a copy of the pool sorted best-first by the deterministic
// comparator (never-assigned class, score, presence, member ID), with no
// stochastic perturbation. Used for constraint biasing and gap filling,
// which must not consume the random sequence.
func Rank(pool []Candidate) []Candidate {
	ranked := slices.Clone(pool)
	slices.SortFunc(ranked, compare)

	return ranked
}

// compare ranks candidates best-first: the never-assigned class precedes
// everything, then higher priority, then longer presence, then member ID.
func compare(a, b Candidate) int {
	if a.NeverAssigned != b.NeverAssigned {
		if a.NeverAssigned {
			return -1
		}

		return 1
	}
	switch {
	case a.Priority > b.Priority:
		return -1
	case a.Priority < b.Priority:
		return 1
	}
	switch {
	case a.PresenceDays > b.PresenceDays:
		return -1
	case a.PresenceDays < b.PresenceDays:
		return 1
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}

// gumbel draws a standard Gumbel sample from the injected uniform source.
func gumbel(rng types.RandSource) float64 {
	u := rng.Float64()
	// Float64 yields [0,1); nudge 0 off the pole of the double log.
	if u <= 0 {
		u = math.SmallestNonzeroFloat64
	}

	return -math.Log(-math.Log(u))
}
