package types

// EstimatorState is the per-member belief about that member's long-run
// assignment rate, maintained by a recursive Bayesian filter.
//
// Invariants:
//   - Variance is non-negative and non-increasing except for the one-time
//     process-noise inflation applied per elapsed period.
//   - Mean stays within [0, 1]; it models a per-period indicator rate.
type EstimatorState struct {
	// Mean is the posterior mean of the assignment rate.
	Mean float64 `json:"mean" yaml:"mean"`

	// Variance is the posterior variance (uncertainty) of the rate.
	Variance float64 `json:"variance" yaml:"variance"`

	// Observations is the number of updates folded into this state.
	Observations int `json:"observations" yaml:"observations"`

	// UpdatedPeriod is the cumulative count of elapsed periods folded
	// into the state, including inactivity gaps between updates.
	UpdatedPeriod int `json:"updatedPeriod" yaml:"updatedPeriod"`
}

// EstimatorTable maps member IDs to their estimator states.
//
// The table is arena-style state: it is passed into a generation call,
// owned exclusively by the orchestrator for the duration of that call, and
// returned updated. There is no process-wide singleton.
type EstimatorTable map[string]EstimatorState

// Clone returns a deep copy of the table. A nil table clones to an empty,
// non-nil table so callers can always write into the result.
func (t EstimatorTable) Clone() EstimatorTable {
	out := make(EstimatorTable, len(t))
	for id, st := range t {
		out[id] = st
	}

	return out
}
