package types

import "fmt"

// WarningCode identifies a class of non-fatal constraint relaxation.
type WarningCode string

// Warning codes emitted by batch generation, gap filling, and fairness
// reporting. Warnings degrade gracefully: they never abort a run.
const (
	// WarnTeamUndersized: the active pool was smaller than the configured
	// team size, so the period was generated with a partial team.
	WarnTeamUndersized WarningCode = "team_undersized"

	// WarnSubstitutesShort: fewer substitutes than configured were
	// available after primaries were chosen.
	WarnSubstitutesShort WarningCode = "substitutes_short"

	// WarnNoConsecutiveRelaxed: the no-consecutive-period constraint was
	// relaxed because the pool was too small to honor it.
	WarnNoConsecutiveRelaxed WarningCode = "no_consecutive_relaxed"

	// WarnNoExperiencedAvailable: the experienced-member constraint could
	// not be satisfied because no experienced candidate was active.
	WarnNoExperiencedAvailable WarningCode = "no_experienced_available"

	// WarnEmptyPool: no member was active on the period's date.
	WarnEmptyPool WarningCode = "empty_pool"

	// WarnGiniExceeded: the batch's Gini coefficient exceeded its
	// configured threshold.
	WarnGiniExceeded WarningCode = "gini_threshold_exceeded"

	// WarnCVExceeded: the batch's coefficient of variation exceeded its
	// configured threshold.
	WarnCVExceeded WarningCode = "cv_threshold_exceeded"

	// WarnGapUnfilled: gap filling found no eligible replacement, so the
	// slot was left short rather than backfilled with a worse choice.
	WarnGapUnfilled WarningCode = "gap_unfilled"
)

// Warning describes one constraint relaxation or soft violation.
type Warning struct {
	// Code classifies the warning.
	Code WarningCode `json:"code" yaml:"code"`

	// PeriodIndex is the affected period, or -1 for batch-scoped warnings.
	PeriodIndex int `json:"periodIndex" yaml:"periodIndex"`

	// Message is a human-readable description.
	Message string `json:"message" yaml:"message"`
}

// String renders the warning for logs.
func (w Warning) String() string {
	if w.PeriodIndex < 0 {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}

	return fmt.Sprintf("%s (period %d): %s", w.Code, w.PeriodIndex, w.Message)
}
