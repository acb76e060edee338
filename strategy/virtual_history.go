package strategy

import (
	"math"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// VirtualHistory grants newcomers a one-time synthetic baseline, as if they
// had been assigned at the ideal rate for a fixed number of periods before
// joining.
//
// The baseline removes the never-assigned priority spike: a newcomer
// arrives looking averagely served and blends in at the population rate
// instead of being selected immediately. Use this when onboarding bursts
// are operationally disruptive.
type VirtualHistory struct {
	baselinePeriods int
}

var _ types.OnboardingPolicy = (*VirtualHistory)(nil)

// NewVirtualHistory creates a virtual-history onboarding policy.
//
// Parameters:
//   - baselinePeriods: Number of periods of synthetic service credit to
//     grant (values below 1 are raised to 1)
func NewVirtualHistory(baselinePeriods int) *VirtualHistory {
	if baselinePeriods < 1 {
		baselinePeriods = 1
	}

	return &VirtualHistory{baselinePeriods: baselinePeriods}
}

// Name returns the policy identifier.
func (s *VirtualHistory) Name() string { return "virtual_history" }

// Seed returns an estimator state centered on the ideal rate and a history
// credited with round(idealRate * baselinePeriods) synthetic assignments.
func (s *VirtualHistory) Seed(_ types.Member, idealRate, priorVariance float64) (types.EstimatorState, types.History) {
	credit := int(math.Round(idealRate * float64(s.baselinePeriods)))
	if credit < 1 {
		credit = 1
	}

	st := types.EstimatorState{Mean: idealRate, Variance: max(priorVariance, 0)}

	return st, types.History{Assignments: credit}
}
