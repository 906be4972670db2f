package storage

import (
	"context"

	"github.com/halcyonlabs/retrace/core"
)

// MemoryRecord is a single embedded chunk as it lives in storage.
// Vector is expected to be unit length; backends compute distance as
// 1 - dot(query, stored) under that assumption.
type MemoryRecord struct {
	ID       string
	Vector   []float32
	Text     string
	Metadata core.ChunkMetadata
}

// Match is a query hit paired with its distance from the query vector.
// Distance is cosine distance: 0 means identical direction, 2 opposite.
type Match struct {
	Record   *MemoryRecord
	Distance float64
}

// VectorStore provides persistence and similarity search for memory
// records. Implementations must be thread-safe and support concurrent
// access from multiple goroutines.
type VectorStore interface {
	// Add persists one or more records atomically. Either all records
	// are stored or none are. Records with an empty ID are rejected.
	Add(ctx context.Context, records ...*MemoryRecord) error

	// Query returns up to limit records nearest to the given vector,
	// ordered by ascending distance.
	Query(ctx context.Context, vector []float32, limit int) ([]Match, error)

	// Get retrieves a single record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, id string) (*MemoryRecord, error)

	// DeleteContent removes all records belonging to a content ID.
	// Returns the number of records removed. Removing a content ID
	// with no records is not an error.
	DeleteContent(ctx context.Context, contentID string) (int, error)

	// Count returns the total number of records in the store.
	Count(ctx context.Context) (int, error)

	// Sample returns up to n records in storage order. It exists for
	// stats and diagnostics, not retrieval.
	Sample(ctx context.Context, n int) ([]*MemoryRecord, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
