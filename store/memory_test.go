package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	gieplantest "github.com/Krialder/gieplan-plant-watering-scheduler-sub000/testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemory(WithLogger(gieplantest.NewTestLogger(t)))
	defer func() { require.NoError(t, s.Close()) }()

	t.Run("starts empty", func(t *testing.T) {
		ids, err := s.ListBatches(context.Background())
		require.NoError(t, err)
		require.Empty(t, ids)
	})

	runStoreSuite(t, s)
}
