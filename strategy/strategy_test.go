package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

func TestNeutralStart(t *testing.T) {
	policy := NewNeutralStart()
	require.Equal(t, "neutral_start", policy.Name())

	t.Run("zero mean and empty history", func(t *testing.T) {
		st, hist := policy.Seed(types.Member{ID: "m1"}, 0.3, 1.0)
		require.Equal(t, 0.0, st.Mean)
		require.Equal(t, 1.0, st.Variance)
		require.Zero(t, hist.Assignments)
		require.Zero(t, hist.RecentAssignments)
		require.Zero(t, hist.Debt)
	})

	t.Run("negative prior variance is clamped", func(t *testing.T) {
		st, _ := policy.Seed(types.Member{ID: "m1"}, 0.3, -0.5)
		require.Equal(t, 0.0, st.Variance)
	})
}

func TestVirtualHistory(t *testing.T) {
	t.Run("credit scales with baseline length", func(t *testing.T) {
		policy := NewVirtualHistory(10)
		st, hist := policy.Seed(types.Member{ID: "m1"}, 0.3, 1.0)
		require.Equal(t, 0.3, st.Mean)
		require.Equal(t, 3, hist.Assignments)
	})

	t.Run("credit never drops below one", func(t *testing.T) {
		policy := NewVirtualHistory(2)
		_, hist := policy.Seed(types.Member{ID: "m1"}, 0.1, 1.0)
		require.Equal(t, 1, hist.Assignments)
	})

	t.Run("baseline below one is raised", func(t *testing.T) {
		policy := NewVirtualHistory(0)
		_, hist := policy.Seed(types.Member{ID: "m1"}, 0.9, 1.0)
		require.Equal(t, 1, hist.Assignments)
	})

	t.Run("name", func(t *testing.T) {
		require.Equal(t, "virtual_history", NewVirtualHistory(4).Name())
	})
}
