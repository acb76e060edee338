package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/logging"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/metrics"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// Default bucket names for the NATS-backed store.
const (
	DefaultEstimatorBucket = "gieplan-estimators"
	DefaultBatchBucket     = "gieplan-batches"
)

// NATSKVConfig configures the JetStream key-value backend.
type NATSKVConfig struct {
	// EstimatorBucket is the KV bucket for estimator tables.
	// Default: "gieplan-estimators"
	EstimatorBucket string `yaml:"estimatorBucket"`

	// BatchBucket is the KV bucket for generated batches.
	// Default: "gieplan-batches"
	BatchBucket string `yaml:"batchBucket"`

	// SetupTimeout bounds bucket creation at startup.
	// Default: 10s
	SetupTimeout time.Duration `yaml:"setupTimeout"`
}

func (c *NATSKVConfig) setDefaults() {
	if c.EstimatorBucket == "" {
		c.EstimatorBucket = DefaultEstimatorBucket
	}
	if c.BatchBucket == "" {
		c.BatchBucket = DefaultBatchBucket
	}
	if c.SetupTimeout == 0 {
		c.SetupTimeout = 10 * time.Second
	}
}

// NATSKV is a Store backed by two JetStream key-value buckets.
type NATSKV struct {
	estimators jetstream.KeyValue
	batches    jetstream.KeyValue
	metrics    types.MetricsCollector
	logger     types.Logger
}

// Compile-time assertion that NATSKV implements Store.
var _ Store = (*NATSKV)(nil)

// NewNATSKV creates a NATS-backed store, creating its buckets if needed.
//
// Bucket creation retries with exponential backoff: concurrent callers can
// race to create the same bucket and transient JetStream errors are common
// right after a server (re)start.
//
// Parameters:
//   - ctx: Context bounding setup
//   - nc: Connected NATS client
//   - cfg: Bucket configuration (nil uses defaults)
//   - opts: Optional logger and metrics
func NewNATSKV(ctx context.Context, nc *nats.Conn, cfg *NATSKVConfig, opts ...Option) (*NATSKV, error) {
	if cfg == nil {
		cfg = &NATSKVConfig{}
	}
	cfgCopy := *cfg
	cfgCopy.setDefaults()

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

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("jetstream context: %w", err)
	}

	setupCtx, cancel := context.WithTimeout(ctx, cfgCopy.SetupTimeout)
	defer cancel()

	estimators, err := ensureBucket(setupCtx, js, cfgCopy.EstimatorBucket)
	if err != nil {
		return nil, err
	}
	batches, err := ensureBucket(setupCtx, js, cfgCopy.BatchBucket)
	if err != nil {
		return nil, err
	}

	return &NATSKV{
		estimators: estimators,
		batches:    batches,
		metrics:    options.metrics,
		logger:     options.logger,
	}, nil
}

func ensureBucket(ctx context.Context, js jetstream.JetStream, bucket string) (jetstream.KeyValue, error) {
	kv, err := backoff.Retry(ctx, func() (jetstream.KeyValue, error) {
		kv, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: bucket})
		if err == nil {
			return kv, nil
		}
		if errors.Is(err, jetstream.ErrBucketExists) {
			return js.KeyValue(ctx, bucket)
		}

		return nil, err
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(5))
	if err != nil {
		return nil, fmt.Errorf("ensure bucket %q: %w", bucket, err)
	}

	return kv, nil
}

// SaveEstimatorTable persists the estimator table under the given key.
func (n *NATSKV) SaveEstimatorTable(ctx context.Context, key string, table types.EstimatorTable) error {
	defer n.observe("save_table", time.Now())
	payload, err := json.Marshal(table)
	if err != nil {
		n.metrics.RecordStoreError("natskv", "save_table")

		return fmt.Errorf("encode estimator table: %w", err)
	}
	if _, err := n.estimators.Put(ctx, key, payload); err != nil {
		n.metrics.RecordStoreError("natskv", "save_table")

		return fmt.Errorf("put estimator table %q: %w", key, err)
	}

	return nil
}

// LoadEstimatorTable loads the estimator table stored under key.
func (n *NATSKV) LoadEstimatorTable(ctx context.Context, key string) (types.EstimatorTable, error) {
	defer n.observe("load_table", time.Now())
	entry, err := n.estimators.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, fmt.Errorf("estimator table %q: %w", key, ErrNotFound)
		}
		n.metrics.RecordStoreError("natskv", "load_table")

		return nil, fmt.Errorf("get estimator table %q: %w", key, err)
	}

	var table types.EstimatorTable
	if err := json.Unmarshal(entry.Value(), &table); err != nil {
		n.metrics.RecordStoreError("natskv", "load_table")

		return nil, fmt.Errorf("decode estimator table: %w", err)
	}

	return table, nil
}

// SaveBatch persists a generated batch under its ID.
func (n *NATSKV) SaveBatch(ctx context.Context, batch *types.Batch) error {
	defer n.observe("save_batch", time.Now())
	if batch == nil {
		return types.ErrNilBatch
	}
	payload, err := json.Marshal(batch)
	if err != nil {
		n.metrics.RecordStoreError("natskv", "save_batch")

		return fmt.Errorf("encode batch: %w", err)
	}
	if _, err := n.batches.Put(ctx, batch.ID, payload); err != nil {
		n.metrics.RecordStoreError("natskv", "save_batch")

		return fmt.Errorf("put batch %q: %w", batch.ID, err)
	}

	return nil
}

// LoadBatch loads the batch with the given ID.
func (n *NATSKV) LoadBatch(ctx context.Context, id string) (*types.Batch, error) {
	defer n.observe("load_batch", time.Now())
	entry, err := n.batches.Get(ctx, id)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, fmt.Errorf("batch %q: %w", id, ErrNotFound)
		}
		n.metrics.RecordStoreError("natskv", "load_batch")

		return nil, fmt.Errorf("get batch %q: %w", id, err)
	}

	batch := &types.Batch{}
	if err := json.Unmarshal(entry.Value(), batch); err != nil {
		n.metrics.RecordStoreError("natskv", "load_batch")

		return nil, fmt.Errorf("decode batch: %w", err)
	}

	return batch, nil
}

// ListBatches returns the stored batch IDs.
func (n *NATSKV) ListBatches(ctx context.Context) ([]string, error) {
	defer n.observe("list", time.Now())
	lister, err := n.batches.ListKeys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}
		n.metrics.RecordStoreError("natskv", "list")

		return nil, fmt.Errorf("list batches: %w", err)
	}

	var ids []string
	for id := range lister.Keys() {
		ids = append(ids, id)
	}

	return ids, nil
}

// Close is a no-op: the store does not own the NATS connection.
func (n *NATSKV) Close() error {
	return nil
}

func (n *NATSKV) observe(op string, started time.Time) {
	n.metrics.RecordStoreOperation("natskv", op, time.Since(started).Seconds())
}
