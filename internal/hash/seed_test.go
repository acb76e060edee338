package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMix(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, Mix(42), Mix(42))
	})

	t.Run("differs from input", func(t *testing.T) {
		require.NotEqual(t, uint64(42), Mix(42))
	})
}

func TestSubstream(t *testing.T) {
	t.Run("indexes are independent", func(t *testing.T) {
		seen := map[uint64]bool{}
		for i := uint64(0); i < 32; i++ {
			s := Substream(7, i)
			require.False(t, seen[s], "substream collision at index %d", i)
			seen[s] = true
		}
	})

	t.Run("reproducible per index", func(t *testing.T) {
		require.Equal(t, Substream(7, 3), Substream(7, 3))
		require.NotEqual(t, Substream(7, 3), Substream(8, 3))
	})
}
