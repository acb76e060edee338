package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// runStoreSuite exercises the Store contract against a backend. Every
// backend must pass the identical suite.
func runStoreSuite(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	table := types.EstimatorTable{
		"alice": {Mean: 0.31, Variance: 0.12, Observations: 14, UpdatedPeriod: 13},
		"bob":   {Mean: 0.27, Variance: 0.2, Observations: 9, UpdatedPeriod: 13},
	}
	batch := &types.Batch{
		ID: "batch-2025-03",
		Assignments: []types.Assignment{
			{
				PeriodIndex:     0,
				PeriodStart:     time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
				PrimaryIDs:      []string{"alice", "bob"},
				SubstituteIDs:   []string{"carol"},
				MentorSatisfied: true,
			},
			{
				PeriodIndex:     1,
				PeriodStart:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				PrimaryIDs:      []string{"carol"},
				Emergency:       true,
				EmergencyReason: "heatwave",
			},
		},
	}

	t.Run("estimator table round-trip", func(t *testing.T) {
		require.NoError(t, s.SaveEstimatorTable(ctx, "team-a", table))
		got, err := s.LoadEstimatorTable(ctx, "team-a")
		require.NoError(t, err)
		require.Equal(t, table, got)
	})

	t.Run("save replaces the previous table", func(t *testing.T) {
		require.NoError(t, s.SaveEstimatorTable(ctx, "team-a", types.EstimatorTable{
			"alice": {Mean: 0.5, Variance: 0.1, Observations: 15, UpdatedPeriod: 14},
		}))
		got, err := s.LoadEstimatorTable(ctx, "team-a")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, 0.5, got["alice"].Mean)
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := s.LoadEstimatorTable(ctx, "no-such-team")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("batch round-trip", func(t *testing.T) {
		require.NoError(t, s.SaveBatch(ctx, batch))
		got, err := s.LoadBatch(ctx, batch.ID)
		require.NoError(t, err)
		require.Equal(t, batch, got)
	})

	t.Run("missing batch", func(t *testing.T) {
		_, err := s.LoadBatch(ctx, "no-such-batch")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list batches", func(t *testing.T) {
		other := batch.Clone()
		other.ID = "batch-2025-04"
		require.NoError(t, s.SaveBatch(ctx, other))

		ids, err := s.ListBatches(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"batch-2025-03", "batch-2025-04"}, ids)
	})
}
