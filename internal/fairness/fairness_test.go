package fairness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGini(t *testing.T) {
	t.Run("perfect equality scores zero", func(t *testing.T) {
		require.InDelta(t, 0, Gini([]float64{4, 4, 4, 4}), 1e-9)
	})

	t.Run("total concentration approaches one", func(t *testing.T) {
		g := Gini([]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 10})
		require.Greater(t, g, 0.85)
	})

	t.Run("known two-member split", func(t *testing.T) {
		// (1,3): gini = (2*(1*1+2*3) - 3*4) / (2*4) = 2/8
		require.InDelta(t, 0.25, Gini([]float64{1, 3}), 1e-9)
	})

	t.Run("order does not matter", func(t *testing.T) {
		require.InDelta(t, Gini([]float64{5, 1, 3}), Gini([]float64{3, 5, 1}), 1e-12)
	})

	t.Run("degenerate distributions score zero", func(t *testing.T) {
		require.Equal(t, 0.0, Gini(nil))
		require.Equal(t, 0.0, Gini([]float64{0, 0, 0}))
	})
}

func TestStdDevAndCV(t *testing.T) {
	t.Run("known population stddev", func(t *testing.T) {
		require.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	})

	t.Run("cv normalizes by the mean", func(t *testing.T) {
		require.InDelta(t, 0.4, CV([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	})

	t.Run("zero mean yields zero cv", func(t *testing.T) {
		require.Equal(t, 0.0, CV([]float64{0, 0}))
	})

	t.Run("empty input", func(t *testing.T) {
		require.Equal(t, 0.0, Mean(nil))
		require.Equal(t, 0.0, StdDev(nil))
	})
}
