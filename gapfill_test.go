package gieplan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func gapFillBatch() *Batch {
	return &Batch{
		ID: "batch-1",
		Assignments: []Assignment{
			{PeriodIndex: 0, PeriodStart: batchStart, PrimaryIDs: []string{"a", "b"}, SubstituteIDs: []string{"c"}},
			{PeriodIndex: 1, PeriodStart: batchStart.AddDate(0, 0, 7), PrimaryIDs: []string{"c", "d"}, SubstituteIDs: []string{"a"}},
			{PeriodIndex: 2, PeriodStart: batchStart.AddDate(0, 0, 14), PrimaryIDs: []string{"b", "d"}, SubstituteIDs: []string{"c"}},
		},
	}
}

func TestFillGapAfterRemoval(t *testing.T) {
	joined := batchStart.AddDate(0, -3, 0)
	population := roster(5, joined) // a through e
	ref := batchStart.AddDate(0, 0, 21)
	s := newScheduler(t, &Config{TeamSize: 2})

	t.Run("affected periods get a replacement", func(t *testing.T) {
		batch := gapFillBatch()
		res, err := s.FillGapAfterRemoval("d", batch, population, ref)
		require.NoError(t, err)

		require.Equal(t, []int{1, 2}, res.ReplacedPeriods)
		require.Empty(t, res.Warnings)

		// e is the only member with no assignments anywhere in the plan.
		require.Equal(t, []string{"c", "e"}, res.Batch.Assignments[1].PrimaryIDs)
		require.Len(t, res.Batch.Assignments[2].PrimaryIDs, 2)
		for _, a := range res.Batch.Assignments {
			require.False(t, a.Contains("d"))
		}
	})

	t.Run("untouched periods stay identical", func(t *testing.T) {
		batch := gapFillBatch()
		res, err := s.FillGapAfterRemoval("d", batch, population, ref)
		require.NoError(t, err)

		require.Equal(t, batch.Assignments[0], res.Batch.Assignments[0])
	})

	t.Run("input batch is not mutated", func(t *testing.T) {
		batch := gapFillBatch()
		_, err := s.FillGapAfterRemoval("d", batch, population, ref)
		require.NoError(t, err)

		require.Equal(t, gapFillBatch(), batch)
	})

	t.Run("substitute slots are repaired too", func(t *testing.T) {
		batch := gapFillBatch()
		res, err := s.FillGapAfterRemoval("a", batch, population, ref)
		require.NoError(t, err)

		require.Equal(t, []int{0, 1}, res.ReplacedPeriods)
		require.NotContains(t, res.Batch.Assignments[1].SubstituteIDs, "a")
		require.Len(t, res.Batch.Assignments[1].SubstituteIDs, 1)
	})

	t.Run("member absent from the batch changes nothing", func(t *testing.T) {
		batch := gapFillBatch()
		res, err := s.FillGapAfterRemoval("e", batch, population, ref)
		require.NoError(t, err)

		require.Empty(t, res.ReplacedPeriods)
		require.Empty(t, res.Warnings)
		require.Equal(t, batch.Assignments, res.Batch.Assignments)
	})

	t.Run("slot left short when nobody is eligible", func(t *testing.T) {
		// Everyone already serves in every period, so no replacement exists.
		batch := &Batch{
			ID: "tiny",
			Assignments: []Assignment{
				{PeriodIndex: 0, PeriodStart: batchStart, PrimaryIDs: []string{"a", "b"}},
			},
		}
		res, err := s.FillGapAfterRemoval("b", batch, roster(2, joined), ref)
		require.NoError(t, err)

		require.Empty(t, res.ReplacedPeriods)
		require.Equal(t, []string{"a"}, res.Batch.Assignments[0].PrimaryIDs)
		require.Len(t, res.Warnings, 1)
		require.Equal(t, WarnGapUnfilled, res.Warnings[0].Code)
		require.Equal(t, 0, res.Warnings[0].PeriodIndex)
	})

	t.Run("guards", func(t *testing.T) {
		_, err := s.FillGapAfterRemoval("a", nil, population, ref)
		require.ErrorIs(t, err, ErrNilBatch)

		_, err = s.FillGapAfterRemoval("", gapFillBatch(), population, ref)
		require.ErrorIs(t, err, ErrUnknownMember)

		_, err = s.FillGapAfterRemoval("a", gapFillBatch(), nil, ref)
		require.ErrorIs(t, err, ErrEmptyPopulation)
	})
}
