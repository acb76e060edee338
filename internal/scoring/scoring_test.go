package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{Epsilon: 0.001, MentorPenalty: 0.85, DebtWeight: 0.25}
}

func TestScore(t *testing.T) {
	t.Run("never-assigned member scores the bounded maximum", func(t *testing.T) {
		p := testParams()
		fresh := Input{EffectiveAssignments: 0, EffectiveDays: 100}
		served := Input{EffectiveAssignments: 1, EffectiveDays: 100}

		require.Greater(t, Score(fresh, p), Score(served, p))
		require.InDelta(t, 1/p.Epsilon, Score(fresh, p), 1e-9)
	})

	t.Run("higher rate means lower score", func(t *testing.T) {
		p := testParams()
		light := Input{EffectiveAssignments: 2, EffectiveDays: 100}
		heavy := Input{EffectiveAssignments: 10, EffectiveDays: 100}

		require.Greater(t, Score(light, p), Score(heavy, p))
	})

	t.Run("mentor penalty discounts experienced members", func(t *testing.T) {
		p := testParams()
		plain := Input{EffectiveAssignments: 3, EffectiveDays: 100}
		mentor := plain
		mentor.Mentor = true

		require.InDelta(t, Score(plain, p)*p.MentorPenalty, Score(mentor, p), 1e-9)
	})

	t.Run("recency bonus boosts under-represented members", func(t *testing.T) {
		p := testParams()
		caught := Input{EffectiveAssignments: 3, EffectiveDays: 100, ExpectedRecent: 1.2, ActualRecent: 2}
		behind := Input{EffectiveAssignments: 3, EffectiveDays: 100, ExpectedRecent: 1.2, ActualRecent: 0}

		require.Greater(t, Score(behind, p), Score(caught, p))
		// Over-representation never penalizes below the base score.
		require.InDelta(t, Score(Input{EffectiveAssignments: 3, EffectiveDays: 100}, p), Score(caught, p), 1e-9)
	})

	t.Run("debt bonus carries forward historical imbalance", func(t *testing.T) {
		p := testParams()
		even := Input{EffectiveAssignments: 3, EffectiveDays: 100}
		owed := Input{EffectiveAssignments: 3, EffectiveDays: 100, Debt: 2}

		require.InDelta(t, Score(even, p)*1.5, Score(owed, p), 1e-9)
	})

	t.Run("large surplus dampens but never inverts the score", func(t *testing.T) {
		p := testParams()
		surplus := Input{EffectiveAssignments: 3, EffectiveDays: 100, Debt: -100}

		require.Greater(t, Score(surplus, p), 0.0)
	})

	t.Run("zero presence yields zero rate, not a division error", func(t *testing.T) {
		in := Input{EffectiveAssignments: 0, EffectiveDays: 0}

		require.Equal(t, 0.0, in.Rate())
		require.True(t, in.NeverAssigned())
	})
}
