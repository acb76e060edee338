// Package store provides persistence backends for carrying scheduler state
// between generation runs.
//
// The scheduler core performs no I/O: estimator tables and batches are
// plain values passed in and returned. This package is the persistence
// collaborator around that boundary. All backends round-trip the record
// shapes losslessly via their JSON encodings; no field is dropped or
// reordered in a way that changes meaning.
//
// Three backends are provided:
//   - Memory: process-local, for tests and single-run tools
//   - NATSKV: JetStream key-value buckets, for shared deployments
//   - SQLite: a single local database file
package store

import (
	"context"
	"errors"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// ErrNotFound is returned when a requested key or batch does not exist.
var ErrNotFound = errors.New("not found in store")

// Store persists estimator tables and generated batches.
//
// Implementations must be safe for concurrent use. Keys for estimator
// tables are caller-chosen (e.g. one key per team).
type Store interface {
	// SaveEstimatorTable persists the estimator table under the given key,
	// replacing any previous value.
	SaveEstimatorTable(ctx context.Context, key string, table types.EstimatorTable) error

	// LoadEstimatorTable loads the estimator table stored under key.
	//
	// Returns:
	//   - types.EstimatorTable: The stored table
	//   - error: ErrNotFound when no table exists under key
	LoadEstimatorTable(ctx context.Context, key string) (types.EstimatorTable, error)

	// SaveBatch persists a generated batch under its ID.
	SaveBatch(ctx context.Context, batch *types.Batch) error

	// LoadBatch loads the batch with the given ID.
	//
	// Returns:
	//   - *types.Batch: The stored batch
	//   - error: ErrNotFound when no batch exists with that ID
	LoadBatch(ctx context.Context, id string) (*types.Batch, error)

	// ListBatches returns the stored batch IDs in unspecified order.
	ListBatches(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// Option configures optional store dependencies.
type Option func(*storeOptions)

type storeOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

// WithLogger sets a logger for the store backend.
func WithLogger(logger types.Logger) Option {
	return func(o *storeOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector; store operations record their
// latency and failures through it.
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *storeOptions) {
		o.metrics = metrics
	}
}
