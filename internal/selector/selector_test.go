package selector

import (
	"testing"

	"github.com/stretchr/testify/require"

	gieplantest "github.com/Krialder/gieplan-plant-watering-scheduler-sub000/testing"
)

func pool() []Candidate {
	return []Candidate{
		{ID: "a", Priority: 40, PresenceDays: 100},
		{ID: "b", Priority: 30, PresenceDays: 100},
		{ID: "c", Priority: 20, PresenceDays: 100},
		{ID: "d", Priority: 10, PresenceDays: 100},
		{ID: "e", Priority: 5, PresenceDays: 100},
	}
}

func TestPick(t *testing.T) {
	t.Run("temperature zero is deterministic top-N", func(t *testing.T) {
		res := Pick(pool(), 2, 2, nil, 0, nil)

		require.Equal(t, []string{"a", "b"}, res.Primaries)
		require.Equal(t, []string{"c", "d"}, res.Substitutes)
		require.False(t, res.Undersized)
		require.False(t, res.SubstitutesShort)
	})

	t.Run("never-assigned class outranks any priority", func(t *testing.T) {
		cands := append(pool(), Candidate{ID: "z", Priority: 1, NeverAssigned: true, PresenceDays: 3})

		res := Pick(cands, 2, 0, nil, 0, nil)

		require.Equal(t, []string{"z", "a"}, res.Primaries)
	})

	t.Run("ties break by presence then by member ID", func(t *testing.T) {
		cands := []Candidate{
			{ID: "y", Priority: 10, PresenceDays: 50},
			{ID: "x", Priority: 10, PresenceDays: 50},
			{ID: "w", Priority: 10, PresenceDays: 80},
		}

		res := Pick(cands, 3, 0, nil, 0, nil)

		require.Equal(t, []string{"w", "x", "y"}, res.Primaries)
	})

	t.Run("exclusions are removed before ranking", func(t *testing.T) {
		exclude := map[string]struct{}{"a": {}, "b": {}}

		res := Pick(pool(), 2, 1, exclude, 0, nil)

		require.Equal(t, []string{"c", "d"}, res.Primaries)
		require.Equal(t, []string{"e"}, res.Substitutes)
	})

	t.Run("pool smaller than team yields all candidates and undersized flag", func(t *testing.T) {
		res := Pick(pool()[:1], 3, 2, nil, 0, nil)

		require.Equal(t, []string{"a"}, res.Primaries)
		require.True(t, res.Undersized)
		require.Empty(t, res.Substitutes)
		require.True(t, res.SubstitutesShort)
	})

	t.Run("identical seed sequence reproduces identical picks", func(t *testing.T) {
		first := Pick(pool(), 2, 2, nil, 1.5, gieplantest.NewFixedRand(0.9, 0.1, 0.4, 0.7, 0.2))
		second := Pick(pool(), 2, 2, nil, 1.5, gieplantest.NewFixedRand(0.9, 0.1, 0.4, 0.7, 0.2))

		require.Equal(t, first, second)
	})

	t.Run("perturbation draws do not depend on input order", func(t *testing.T) {
		shuffled := []Candidate{pool()[3], pool()[0], pool()[4], pool()[1], pool()[2]}

		first := Pick(pool(), 2, 2, nil, 1.5, gieplantest.NewFixedRand(0.9, 0.1, 0.4, 0.7, 0.2))
		second := Pick(shuffled, 2, 2, nil, 1.5, gieplantest.NewFixedRand(0.9, 0.1, 0.4, 0.7, 0.2))

		require.Equal(t, first, second)
	})

	t.Run("primaries and substitutes stay disjoint under temperature", func(t *testing.T) {
		res := Pick(pool(), 2, 3, nil, 2.0, gieplantest.NewFixedRand(0.3, 0.6, 0.9, 0.05, 0.5))

		seen := map[string]bool{}
		for _, id := range append(append([]string{}, res.Primaries...), res.Substitutes...) {
			require.False(t, seen[id], "duplicate %s", id)
			seen[id] = true
		}
	})
}

func TestRank(t *testing.T) {
	t.Run("sorts best-first without consuming randomness", func(t *testing.T) {
		ranked := Rank([]Candidate{
			{ID: "b", Priority: 30},
			{ID: "z", Priority: 1, NeverAssigned: true},
			{ID: "a", Priority: 40},
		})

		require.Equal(t, "z", ranked[0].ID)
		require.Equal(t, "a", ranked[1].ID)
		require.Equal(t, "b", ranked[2].ID)
	})
}
