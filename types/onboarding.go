package types

// OnboardingPolicy decides how a member with no recorded history enters
// the rotation.
//
// The underlying question — should newcomers catch up to the accumulated
// totals of existing members, or only match their rate going forward — has
// no single right answer, so it is pluggable. Policies must be:
//   - Deterministic (same input, same output)
//   - Stateless (no side effects)
//   - Cheap (called once per unseen member per batch)
//
// The default is strategy.NeutralStart: a neutral prior and zero history,
// converging through normal estimator updates with no catch-up.
type OnboardingPolicy interface {
	// Name returns the policy identifier for logs and reports.
	Name() string

	// Seed produces the initial estimator state and starting history for
	// a member the scheduler has not seen before.
	//
	// Parameters:
	//   - m: The new member
	//   - idealRate: The per-period ideal assignment rate at batch start
	//   - priorVariance: The configured estimator prior variance
	//
	// Returns:
	//   - EstimatorState: Initial filter state for the member
	//   - History: Synthetic starting history (zero for no catch-up)
	Seed(m Member, idealRate, priorVariance float64) (EstimatorState, History)
}
