package pgvector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgv "github.com/pgvector/pgvector-go"

	"github.com/halcyonlabs/retrace/storage"
)

const defaultDimensions = 768

// Store implements storage.VectorStore on top of PostgreSQL with the
// pgvector extension. Similarity search is delegated to the database
// via the <=> cosine distance operator.
type Store struct {
	pool       *pgxpool.Pool
	dimensions int
	logger     *slog.Logger
}

var _ storage.VectorStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store) error

// WithDimensions sets the embedding column width. Must match the
// embedding model in use.
func WithDimensions(n int) Option {
	return func(s *Store) error {
		if n <= 0 {
			return fmt.Errorf("dimensions must be positive, got %d", n)
		}
		s.dimensions = n
		return nil
	}
}

// NewStore connects to PostgreSQL and ensures the schema exists.
func NewStore(ctx context.Context, connStr string, opts ...Option) (storage.VectorStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	s := &Store{
		pool:       pool,
		dimensions: defaultDimensions,
		logger:     slog.Default().With("component", "pgvector_store"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			pool.Close()
			return nil, err
		}
	}

	if err := s.createTables(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables(ctx context.Context) error {
	query := fmt.Sprintf(`
    CREATE EXTENSION IF NOT EXISTS vector;

    CREATE TABLE IF NOT EXISTS memory_records (
        id TEXT PRIMARY KEY,
        content_id TEXT NOT NULL,
        body TEXT NOT NULL,
        metadata JSONB NOT NULL,
        embedding vector(%d) NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_memory_records_content_id ON memory_records(content_id);

    CREATE INDEX IF NOT EXISTS idx_memory_records_embedding ON memory_records
    USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100);
    `, s.dimensions)

	_, err := s.pool.Exec(ctx, query)
	return err
}

// Close closes the connection pool.
func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// Add persists records in a single database transaction.
func (s *Store) Add(ctx context.Context, records ...*storage.MemoryRecord) error {
	if len(records) == 0 {
		return nil
	}
	for _, record := range records {
		if record.ID == "" {
			return storage.ErrInvalidQuery
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	defer tx.Rollback(ctx)

	query := `
    INSERT INTO memory_records (id, content_id, body, metadata, embedding)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (id) DO UPDATE SET
        content_id = EXCLUDED.content_id,
        body = EXCLUDED.body,
        metadata = EXCLUDED.metadata,
        embedding = EXCLUDED.embedding
    `

	for _, record := range records {
		meta, err := json.Marshal(record.Metadata)
		if err != nil {
			return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
		}
		vector := pgv.NewVector(storage.NormalizeVector(record.Vector))
		_, err = tx.Exec(ctx, query,
			record.ID, record.Metadata.ContentID, record.Text, meta, vector)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	return nil
}

// Query delegates nearest-neighbor search to pgvector.
func (s *Store) Query(ctx context.Context, vector []float32, limit int) ([]storage.Match, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	query := `
    SELECT id, body, metadata, embedding, embedding <=> $1 AS distance
    FROM memory_records
    ORDER BY embedding <=> $1
    LIMIT $2
    `
	queryVec := pgv.NewVector(storage.NormalizeVector(vector))
	rows, err := s.pool.Query(ctx, query, queryVec, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []storage.Match
	for rows.Next() {
		record := &storage.MemoryRecord{}
		var meta []byte
		var embedding pgv.Vector
		var distance float64
		if err := rows.Scan(&record.ID, &record.Text, &meta, &embedding, &distance); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(meta, &record.Metadata); err != nil {
			return nil, fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
		}
		record.Vector = embedding.Slice()
		matches = append(matches, storage.Match{Record: record, Distance: distance})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug("vector query complete", "hits", len(matches), "limit", limit)
	return matches, nil
}

// Get retrieves a single record by ID.
func (s *Store) Get(ctx context.Context, id string) (*storage.MemoryRecord, error) {
	query := `SELECT id, body, metadata, embedding FROM memory_records WHERE id = $1`

	record := &storage.MemoryRecord{}
	var meta []byte
	var embedding pgv.Vector
	err := s.pool.QueryRow(ctx, query, id).Scan(&record.ID, &record.Text, &meta, &embedding)
	if err == pgx.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(meta, &record.Metadata); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}
	record.Vector = embedding.Slice()
	return record, nil
}

// DeleteContent removes every record belonging to a content ID.
func (s *Store) DeleteContent(ctx context.Context, contentID string) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM memory_records WHERE content_id = $1`, contentID)
	if err != nil {
		return 0, err
	}
	deleted := int(tag.RowsAffected())
	s.logger.Debug("content deleted", "content_id", contentID, "records", deleted)
	return deleted, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM memory_records`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Sample returns up to n records in primary key order.
func (s *Store) Sample(ctx context.Context, n int) ([]*storage.MemoryRecord, error) {
	if n <= 0 {
		return nil, nil
	}

	query := `SELECT id, body, metadata, embedding FROM memory_records ORDER BY id LIMIT $1`
	rows, err := s.pool.Query(ctx, query, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*storage.MemoryRecord
	for rows.Next() {
		record := &storage.MemoryRecord{}
		var meta []byte
		var embedding pgv.Vector
		if err := rows.Scan(&record.ID, &record.Text, &meta, &embedding); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(meta, &record.Metadata); err != nil {
			return nil, fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
		}
		record.Vector = embedding.Slice()
		records = append(records, record)
	}
	return records, rows.Err()
}
