package types

// RunState represents the phase of one batch generation run.
//
// A run progresses strictly forward:
//
//	RunInitializing → RunGenerating → RunFinalizing
//
// There are no retries and no suspension points; a run either completes or
// fails validation before leaving RunInitializing.
type RunState int

const (
	// RunInitializing covers input validation and the one-time historical
	// snapshot that seeds the running batch state.
	RunInitializing RunState = iota

	// RunGenerating covers the per-period loop.
	RunGenerating

	// RunFinalizing covers the fairness report and threshold checks.
	RunFinalizing
)

// String returns the string representation of the run state.
func (s RunState) String() string {
	switch s {
	case RunInitializing:
		return "Initializing"
	case RunGenerating:
		return "Generating"
	case RunFinalizing:
		return "Finalizing"
	default:
		return "Unknown"
	}
}
