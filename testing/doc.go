// Package testing provides test utilities for the gieplan library.
//
// It follows Go's convention of offering testing helpers in a dedicated
// package (similar to net/http/httptest):
//
//   - NewTestLogger: types.Logger writing through testing.T
//   - FixedRand: deterministic fixed-sequence RandSource
//   - StartEmbeddedNATS: in-process NATS server with JetStream for store tests
package testing
