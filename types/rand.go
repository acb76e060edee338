package types

// RandSource supplies uniform random floats to the stochastic selector.
//
// The selector draws all of its randomness through this interface, so
// determinism is structural: inject a seeded source for reproducible runs,
// or a fixed-sequence fake in tests. The scheduler never touches ambient
// package-level randomness.
type RandSource interface {
	// Float64 returns the next uniform sample in [0, 1).
	Float64() float64
}
