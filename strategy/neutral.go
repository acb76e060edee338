package strategy

import (
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// NeutralStart implements the equal-rate-going-forward onboarding model.
//
// Newcomers receive a fresh estimator state at the configured prior and an
// empty history. They enter the never-assigned score class, so their first
// selection is favored, and afterwards they converge through normal
// estimator updates. There is no catch-up against the accumulated totals
// of longer-tenured members.
type NeutralStart struct{}

var _ types.OnboardingPolicy = (*NeutralStart)(nil)

// NewNeutralStart creates the default onboarding policy.
func NewNeutralStart() *NeutralStart {
	return &NeutralStart{}
}

// Name returns the policy identifier.
func (s *NeutralStart) Name() string { return "neutral_start" }

// Seed returns a zero-mean estimator state at the configured prior
// variance and an all-zero history.
func (s *NeutralStart) Seed(_ types.Member, _ /* idealRate */, priorVariance float64) (types.EstimatorState, types.History) {
	return types.EstimatorState{Mean: 0, Variance: max(priorVariance, 0)}, types.History{}
}
