package testing

import "github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"

// FixedRand is a types.RandSource that replays a fixed sequence of values,
// cycling when exhausted. It makes temperature-based selection fully
// scriptable in tests.
type FixedRand struct {
	values []float64
	next   int
}

var _ types.RandSource = (*FixedRand)(nil)

// NewFixedRand creates a fixed-sequence random source.
//
// Parameters:
//   - values: Sequence to replay; an empty sequence always yields 0.5
func NewFixedRand(values ...float64) *FixedRand {
	return &FixedRand{values: values}
}

// Float64 returns the next value in the sequence, cycling at the end.
func (f *FixedRand) Float64() float64 {
	if len(f.values) == 0 {
		return 0.5
	}
	v := f.values[f.next%len(f.values)]
	f.next++

	return v
}
