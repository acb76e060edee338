package types

// MemberRate is one row of a fairness report.
type MemberRate struct {
	// MemberID identifies the member.
	MemberID string `json:"memberId" yaml:"memberId"`

	// Assignments is the primary-assignment count over the reported range.
	Assignments int `json:"assignments" yaml:"assignments"`

	// PresenceDays is the member's elapsed presence as of the reference date.
	PresenceDays int `json:"presenceDays" yaml:"presenceDays"`

	// Rate is Assignments divided by PresenceDays (0 when no presence).
	Rate float64 `json:"rate" yaml:"rate"`
}

// FairnessReport summarizes how evenly assignments are distributed.
//
// Reports are computed on demand and never persisted.
type FairnessReport struct {
	// Rates holds one entry per member, ordered by member ID.
	Rates []MemberRate `json:"rates" yaml:"rates"`

	// MeanRate is the population mean of the per-member rates.
	MeanRate float64 `json:"meanRate" yaml:"meanRate"`

	// Gini is the Gini coefficient of the assignment-count distribution
	// (0 = perfectly equal).
	Gini float64 `json:"gini" yaml:"gini"`

	// CV is the coefficient of variation of the assignment counts.
	CV float64 `json:"cv" yaml:"cv"`

	// StdDev is the standard deviation of the assignment counts.
	StdDev float64 `json:"stdDev" yaml:"stdDev"`

	// Violations lists threshold breaches found while building the report.
	Violations []Warning `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// BatchResult is the full outcome of one generation call.
type BatchResult struct {
	// Batch holds the generated period assignments.
	Batch *Batch `json:"batch" yaml:"batch"`

	// Warnings lists every constraint relaxation encountered, in period
	// order. An empty list means every constraint held.
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Estimators is the updated estimator table after all periods. Carry
	// it into the next generation call to preserve rate beliefs.
	Estimators EstimatorTable `json:"estimators" yaml:"estimators"`

	// Report is the fairness report over the generated batch.
	Report *FairnessReport `json:"report" yaml:"report"`
}

// GapFillResult is the outcome of filling gaps after a member's removal.
type GapFillResult struct {
	// Batch is the updated batch. Periods that did not contain the removed
	// member are byte-identical to the input.
	Batch *Batch `json:"batch" yaml:"batch"`

	// ReplacedPeriods lists the period indexes where a replacement was
	// inserted.
	ReplacedPeriods []int `json:"replacedPeriods,omitempty" yaml:"replacedPeriods,omitempty"`

	// Warnings lists slots left short because no replacement was eligible.
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
