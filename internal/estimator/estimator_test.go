package estimator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testConstants() Constants {
	return Constants{
		ProcessNoise:     0.01,
		ObservationNoise: 0.25,
		PriorVariance:    1.0,
		DriftThreshold:   0.35,
		DriftPull:        0.25,
	}
}

func TestUpdate(t *testing.T) {
	t.Run("assignment pulls the mean up", func(t *testing.T) {
		s := NewState(0, 1.0)
		next, _ := Update(s, true, 1, 0.3, testConstants())

		require.Greater(t, next.Mean, s.Mean)
		require.Equal(t, 1, next.Observations)
	})

	t.Run("non-assignment pulls the mean down", func(t *testing.T) {
		s := NewState(0.8, 0.5)
		next, _ := Update(s, false, 1, 0.8, testConstants())

		require.Less(t, next.Mean, s.Mean)
	})

	t.Run("variance is monotonically non-increasing without process noise", func(t *testing.T) {
		c := testConstants()
		c.ProcessNoise = 0

		s := NewState(0, 1.0)
		for i := 0; i < 50; i++ {
			next, _ := Update(s, i%3 == 0, 1, 0.3, c)
			require.LessOrEqual(t, next.Variance, s.Variance)
			require.GreaterOrEqual(t, next.Variance, 0.0)
			s = next
		}
	})

	t.Run("process noise inflates variance per elapsed period", func(t *testing.T) {
		c := testConstants()

		one, _ := Update(NewState(0.3, 0.1), false, 1, 0.3, c)
		five, _ := Update(NewState(0.3, 0.1), false, 5, 0.3, c)

		require.Greater(t, five.Variance, one.Variance)
	})

	t.Run("drift correction pulls a runaway mean toward the ideal rate", func(t *testing.T) {
		c := testConstants()

		// A fresh member assigned on its first observation with a huge gain
		// would otherwise jump straight toward 1.
		next, corrected := Update(NewState(0, 1.0), true, 1, 0.3, c)

		require.True(t, corrected)
		require.Less(t, next.Mean, 0.8)
		require.Greater(t, next.Mean, 0.3)
	})

	t.Run("mean stays clamped to the unit interval", func(t *testing.T) {
		c := testConstants()
		c.DriftThreshold = 1 // disable correction

		s := NewState(0, 1.0)
		for i := 0; i < 100; i++ {
			s, _ = Update(s, true, 1, 1, c)
			require.GreaterOrEqual(t, s.Mean, 0.0)
			require.LessOrEqual(t, s.Mean, 1.0)
		}
	})

	t.Run("identical inputs reproduce bit-for-bit", func(t *testing.T) {
		c := testConstants()

		a, _ := Update(NewState(0.2, 0.4), true, 2, 0.25, c)
		b, _ := Update(NewState(0.2, 0.4), true, 2, 0.25, c)

		require.Equal(t, a, b)
	})
}
