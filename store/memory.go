package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/logging"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/metrics"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// Memory is an in-process Store backed by concurrent maps.
//
// Values are held as their JSON encodings, so Memory exercises exactly the
// same round-trip path as the durable backends and tests against it catch
// lossy record shapes.
type Memory struct {
	tables  *xsync.Map[string, []byte]
	batches *xsync.Map[string, []byte]
	metrics types.MetricsCollector
	logger  types.Logger
}

// Compile-time assertion that Memory implements Store.
var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory(opts ...Option) *Memory {
	options := &storeOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logging.NewSlogDefault()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Memory{
		tables:  xsync.NewMap[string, []byte](),
		batches: xsync.NewMap[string, []byte](),
		metrics: options.metrics,
		logger:  options.logger,
	}
}

// SaveEstimatorTable persists the estimator table under the given key.
func (m *Memory) SaveEstimatorTable(_ context.Context, key string, table types.EstimatorTable) error {
	defer m.observe("save_table", time.Now())
	payload, err := json.Marshal(table)
	if err != nil {
		m.metrics.RecordStoreError("memory", "save_table")

		return fmt.Errorf("encode estimator table: %w", err)
	}
	m.tables.Store(key, payload)

	return nil
}

// LoadEstimatorTable loads the estimator table stored under key.
func (m *Memory) LoadEstimatorTable(_ context.Context, key string) (types.EstimatorTable, error) {
	defer m.observe("load_table", time.Now())
	payload, ok := m.tables.Load(key)
	if !ok {
		return nil, fmt.Errorf("estimator table %q: %w", key, ErrNotFound)
	}

	var table types.EstimatorTable
	if err := json.Unmarshal(payload, &table); err != nil {
		m.metrics.RecordStoreError("memory", "load_table")

		return nil, fmt.Errorf("decode estimator table: %w", err)
	}

	return table, nil
}

// SaveBatch persists a generated batch under its ID.
func (m *Memory) SaveBatch(_ context.Context, batch *types.Batch) error {
	defer m.observe("save_batch", time.Now())
	if batch == nil {
		return types.ErrNilBatch
	}
	payload, err := json.Marshal(batch)
	if err != nil {
		m.metrics.RecordStoreError("memory", "save_batch")

		return fmt.Errorf("encode batch: %w", err)
	}
	m.batches.Store(batch.ID, payload)

	return nil
}

// LoadBatch loads the batch with the given ID.
func (m *Memory) LoadBatch(_ context.Context, id string) (*types.Batch, error) {
	defer m.observe("load_batch", time.Now())
	payload, ok := m.batches.Load(id)
	if !ok {
		return nil, fmt.Errorf("batch %q: %w", id, ErrNotFound)
	}

	batch := &types.Batch{}
	if err := json.Unmarshal(payload, batch); err != nil {
		m.metrics.RecordStoreError("memory", "load_batch")

		return nil, fmt.Errorf("decode batch: %w", err)
	}

	return batch, nil
}

// ListBatches returns the stored batch IDs.
func (m *Memory) ListBatches(_ context.Context) ([]string, error) {
	defer m.observe("list", time.Now())
	ids := make([]string, 0, m.batches.Size())
	m.batches.Range(func(id string, _ []byte) bool {
		ids = append(ids, id)

		return true
	})

	return ids, nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error {
	return nil
}

func (m *Memory) observe(op string, started time.Time) {
	m.metrics.RecordStoreOperation("memory", op, time.Since(started).Seconds())
}
