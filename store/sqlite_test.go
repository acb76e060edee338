package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gieplantest "github.com/Krialder/gieplan-plant-watering-scheduler-sub000/testing"
)

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gieplan.db")
	s, err := NewSQLite(context.Background(), path, WithLogger(gieplantest.NewTestLogger(t)))
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	runStoreSuite(t, s)

	t.Run("data survives reopening the file", func(t *testing.T) {
		reopened, err := NewSQLite(context.Background(), path)
		require.NoError(t, err)
		defer func() { require.NoError(t, reopened.Close()) }()

		got, err := reopened.LoadBatch(context.Background(), "batch-2025-03")
		require.NoError(t, err)
		require.Len(t, got.Assignments, 2)
	})
}
