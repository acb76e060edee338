// Package fairness computes inequality statistics over assignment-count
// distributions.
package fairness

import (
	"math"
	"slices"
)

// Mean returns the arithmetic mean of values, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(values)))
}

// CV returns the coefficient of variation (stddev / mean), 0 when the mean
// is zero.
func CV(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}

	return StdDev(values) / mean
}

// Gini returns the Gini coefficient of the distribution: 0 for perfect
// equality, approaching 1 as a single member absorbs everything. Values
// must be non-negative; an all-zero or empty distribution scores 0.
func Gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	total := 0.0
	weighted := 0.0
	for i, v := range sorted {
		total += v
		weighted += float64(i+1) * v
	}
	if total == 0 {
		return 0
	}

	nf := float64(n)

	return (2*weighted - (nf+1)*total) / (nf * total)
}
