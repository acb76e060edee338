// Package hash provides deterministic seed derivation for the scheduler's
// random streams, backed by xxh3.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Mix derives a secondary seed from a base seed, so a single configured
// seed can feed independent generators without reusing the raw value.
func Mix(seed uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)

	return xxh3.Hash(buf[:])
}

// Substream derives a seed for an indexed substream (one batch run) from
// the base seed. Distinct indexes yield independent, reproducible streams.
func Substream(seed uint64, index uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], index)

	return xxh3.Hash(buf[:])
}
