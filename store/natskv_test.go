package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	gieplantest "github.com/Krialder/gieplan-plant-watering-scheduler-sub000/testing"
)

func TestNATSKVStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping embedded NATS server test in short mode")
	}

	_, nc := gieplantest.StartEmbeddedNATS(t)

	s, err := NewNATSKV(context.Background(), nc, nil, WithLogger(gieplantest.NewTestLogger(t)))
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	runStoreSuite(t, s)

	t.Run("reconnecting client sees existing buckets", func(t *testing.T) {
		again, err := NewNATSKV(context.Background(), nc, &NATSKVConfig{}, WithLogger(gieplantest.NewTestLogger(t)))
		require.NoError(t, err)
		defer func() { require.NoError(t, again.Close()) }()

		got, err := again.LoadBatch(context.Background(), "batch-2025-03")
		require.NoError(t, err)
		require.Equal(t, "batch-2025-03", got.ID)
	})
}
