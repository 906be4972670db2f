package badger

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/halcyonlabs/retrace/storage"
)

// Store implements storage.VectorStore on top of BadgerDB.
type Store struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.VectorStore = (*Store)(nil)

// NewStore opens a BadgerDB-backed vector store at the given path.
func NewStore(path string) (storage.VectorStore, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return newStore(backend), nil
}

func newStore(backend *Backend) *Store {
	return &Store{
		backend: backend,
		logger:  slog.Default().With("component", "badger_store"),
	}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Add persists records in a single transaction. Vectors are normalized
// to unit length before writing so queries can use a plain dot product.
func (s *Store) Add(ctx context.Context, records ...*storage.MemoryRecord) error {
	if len(records) == 0 {
		return nil
	}
	for _, record := range records {
		if record.ID == "" {
			return storage.ErrInvalidQuery
		}
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			stored := *record
			stored.Vector = storage.NormalizeVector(record.Vector)

			value, err := storage.MarshalRecord(&stored)
			if err != nil {
				return err
			}
			if err := tx.Set(makeRecordKey(record.ID), value); err != nil {
				return err
			}

			// Content index maps back to the primary key for cascades.
			contentKey := makeContentKey(record.Metadata.ContentID, record.ID)
			if err := tx.Set(contentKey, []byte(record.ID)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Query scans all records, computing cosine distance against the given
// vector. Results are ordered by ascending distance, capped at limit.
func (s *Store) Query(ctx context.Context, vector []float32, limit int) ([]storage.Match, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}
	query := storage.NormalizeVector(vector)

	var matches []storage.Match
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(memoryRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *storage.MemoryRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil || len(record.Vector) == 0 {
				continue
			}

			matches = append(matches, storage.Match{
				Record:   record,
				Distance: storage.CosineDistance(query, record.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(matches, func(a, b storage.Match) int {
		if a.Distance < b.Distance {
			return -1
		}
		if a.Distance > b.Distance {
			return 1
		}
		return 0
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	s.logger.Debug("vector query complete", "hits", len(matches), "limit", limit)
	return matches, nil
}

// Get retrieves a single record by ID.
func (s *Store) Get(ctx context.Context, id string) (*storage.MemoryRecord, error) {
	var record *storage.MemoryRecord
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeRecordKey(id))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteContent removes every record indexed under the given content ID.
func (s *Store) DeleteContent(ctx context.Context, contentID string) (int, error) {
	deleted := 0
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialContentKey(contentID)

		// Collect keys first; deleting while iterating invalidates the
		// iterator.
		var contentKeys [][]byte
		var recordIDs []string

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			contentKeys = append(contentKeys, item.KeyCopy(nil))
			err := item.Value(func(val []byte) error {
				recordIDs = append(recordIDs, string(val))
				return nil
			})
			if err != nil {
				iter.Close()
				return err
			}
		}
		iter.Close()

		for i, id := range recordIDs {
			if err := tx.Delete(makeRecordKey(id)); err != nil {
				return err
			}
			if err := tx.Delete(contentKeys[i]); err != nil {
				return err
			}
			deleted++
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("content deleted", "content_id", contentID, "records", deleted)
	return deleted, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(memoryRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Sample returns up to n records in key order.
func (s *Store) Sample(ctx context.Context, n int) ([]*storage.MemoryRecord, error) {
	if n <= 0 {
		return nil, nil
	}

	var records []*storage.MemoryRecord
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(memoryRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid() && len(records) < n; iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalRecord(val)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}
