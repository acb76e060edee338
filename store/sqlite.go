package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/logging"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/metrics"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS estimator_tables (
	key        TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS batches (
	id         TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// SQLite is a Store backed by a single local database file.
//
// Records are stored as JSON payloads in two tables, keeping the on-disk
// shape identical to the other backends.
type SQLite struct {
	db      *sql.DB
	metrics types.MetricsCollector
	logger  types.Logger
}

// Compile-time assertion that SQLite implements Store.
var _ Store = (*SQLite)(nil)

// NewSQLite opens (or creates) the database at path and ensures the schema.
//
// Parameters:
//   - ctx: Context bounding schema setup
//   - path: Database file path (":memory:" works for tests)
//   - opts: Optional logger and metrics
func NewSQLite(ctx context.Context, path string, opts ...Option) (*SQLite, error) {
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

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?cache=shared", path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// modernc's driver serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent use.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &SQLite{db: db, metrics: options.metrics, logger: options.logger}, nil
}

// SaveEstimatorTable persists the estimator table under the given key.
func (s *SQLite) SaveEstimatorTable(ctx context.Context, key string, table types.EstimatorTable) error {
	defer s.observe("save_table", time.Now())
	payload, err := json.Marshal(table)
	if err != nil {
		s.metrics.RecordStoreError("sqlite", "save_table")

		return fmt.Errorf("encode estimator table: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO estimator_tables (key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		s.metrics.RecordStoreError("sqlite", "save_table")

		return fmt.Errorf("upsert estimator table %q: %w", key, err)
	}

	return nil
}

// LoadEstimatorTable loads the estimator table stored under key.
func (s *SQLite) LoadEstimatorTable(ctx context.Context, key string) (types.EstimatorTable, error) {
	defer s.observe("load_table", time.Now())
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM estimator_tables WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("estimator table %q: %w", key, ErrNotFound)
	}
	if err != nil {
		s.metrics.RecordStoreError("sqlite", "load_table")

		return nil, fmt.Errorf("query estimator table %q: %w", key, err)
	}

	var table types.EstimatorTable
	if err := json.Unmarshal([]byte(payload), &table); err != nil {
		s.metrics.RecordStoreError("sqlite", "load_table")

		return nil, fmt.Errorf("decode estimator table: %w", err)
	}

	return table, nil
}

// SaveBatch persists a generated batch under its ID.
func (s *SQLite) SaveBatch(ctx context.Context, batch *types.Batch) error {
	defer s.observe("save_batch", time.Now())
	if batch == nil {
		return types.ErrNilBatch
	}
	payload, err := json.Marshal(batch)
	if err != nil {
		s.metrics.RecordStoreError("sqlite", "save_batch")

		return fmt.Errorf("encode batch: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO batches (id, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		batch.ID, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		s.metrics.RecordStoreError("sqlite", "save_batch")

		return fmt.Errorf("upsert batch %q: %w", batch.ID, err)
	}

	return nil
}

// LoadBatch loads the batch with the given ID.
func (s *SQLite) LoadBatch(ctx context.Context, id string) (*types.Batch, error) {
	defer s.observe("load_batch", time.Now())
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM batches WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("batch %q: %w", id, ErrNotFound)
	}
	if err != nil {
		s.metrics.RecordStoreError("sqlite", "load_batch")

		return nil, fmt.Errorf("query batch %q: %w", id, err)
	}

	batch := &types.Batch{}
	if err := json.Unmarshal([]byte(payload), batch); err != nil {
		s.metrics.RecordStoreError("sqlite", "load_batch")

		return nil, fmt.Errorf("decode batch: %w", err)
	}

	return batch, nil
}

// ListBatches returns the stored batch IDs.
func (s *SQLite) ListBatches(ctx context.Context) ([]string, error) {
	defer s.observe("list", time.Now())
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM batches ORDER BY id`)
	if err != nil {
		s.metrics.RecordStoreError("sqlite", "list")

		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan batch id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) observe(op string, started time.Time) {
	s.metrics.RecordStoreOperation("sqlite", op, time.Since(started).Seconds())
}
