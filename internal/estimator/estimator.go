// Package estimator maintains per-member assignment-rate beliefs using a
// one-dimensional Kalman filter over per-period assignment indicators.
//
// The filter is fully deterministic: identical inputs and constants produce
// bit-for-bit identical states. It never rejects input; all validation is
// the caller's responsibility.
package estimator

import (
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// Constants holds the filter's tuning parameters.
type Constants struct {
	// ProcessNoise inflates variance once per elapsed period, modeling
	// drift in a member's true rate over time.
	ProcessNoise float64

	// ObservationNoise is the measurement variance of the binary
	// assigned/not-assigned observation.
	ObservationNoise float64

	// PriorVariance initializes fresh states.
	PriorVariance float64

	// DriftThreshold is the absolute mean-vs-ideal gap beyond which drift
	// correction engages.
	DriftThreshold float64

	// DriftPull is the fraction of the gap removed by one correction.
	DriftPull float64
}

// NewState produces a fresh estimator state with the given prior mean and
// variance. A negative prior variance is treated as zero.
func NewState(priorMean, priorVariance float64) types.EstimatorState {
	return types.EstimatorState{
		Mean:     clamp01(priorMean),
		Variance: max(priorVariance, 0),
	}
}

// Update folds one period's observation into the state and returns the new
// state. The returned Corrected flag reports whether drift correction fired.
//
// Steps:
//  1. Inflate variance for elapsed time: priorVar = var + processNoise*elapsed.
//  2. Kalman gain K = priorVar / (priorVar + observationNoise).
//  3. mean' = mean + K*(observation - mean), variance' = (1-K)*priorVar.
//  4. If |mean' - idealRate| > driftThreshold, pull mean' toward idealRate
//     by the DriftPull fraction. This bounds runaway estimates for members
//     with very short history.
func Update(s types.EstimatorState, assigned bool, elapsedPeriods int, idealRate float64, c Constants) (types.EstimatorState, bool) {
	if elapsedPeriods < 0 {
		elapsedPeriods = 0
	}
	priorVar := s.Variance + c.ProcessNoise*float64(elapsedPeriods)

	obs := 0.0
	if assigned {
		obs = 1.0
	}

	gain := 0.0
	if denom := priorVar + c.ObservationNoise; denom > 0 {
		gain = priorVar / denom
	}

	mean := s.Mean + gain*(obs-s.Mean)
	variance := (1 - gain) * priorVar

	corrected := false
	if gap := mean - idealRate; gap > c.DriftThreshold || gap < -c.DriftThreshold {
		mean -= c.DriftPull * gap
		corrected = true
	}

	s.Mean = clamp01(mean)
	s.Variance = max(variance, 0)
	s.Observations++
	s.UpdatedPeriod += elapsedPeriods

	return s, corrected
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
