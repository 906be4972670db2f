package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/halcyonlabs/retrace/ai"
	"github.com/halcyonlabs/retrace/chunk"
	"github.com/halcyonlabs/retrace/core"
	"github.com/halcyonlabs/retrace/storage"
)

const (
	defaultChunkTokens   = 500
	defaultOverlapTokens = 50
)

// QueryResult is a single retrieval hit returned to callers. It is
// ephemeral and never persisted.
type QueryResult struct {
	ID          string
	ContentID   string
	Text        string
	Title       string
	Source      string
	Timestamp   string
	ContentType core.ContentType
	ChunkIndex  int
	Score       float64
}

// Stats summarizes the state of the index.
type Stats struct {
	Records       int
	ByContentType map[core.ContentType]int
	BySource      map[string]int
	Sampled       int
}

// Index couples a vector store with an embedding service and provides
// the ingest and retrieve operations on top of them.
type Index struct {
	store         storage.VectorStore
	embedder      ai.Embedder
	completer     ai.Completer
	chunkTokens   int
	overlapTokens int
	sampleSize    int
	logger        *slog.Logger
}

// Option configures an Index.
type Option func(*Index) error

// WithLogger sets the logger used by the index.
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		idx.logger = logger
		return nil
	}
}

// WithCompleter enables the result enhancement hook.
func WithCompleter(completer ai.Completer) Option {
	return func(idx *Index) error {
		idx.completer = completer
		return nil
	}
}

// WithChunking overrides the default chunk and overlap sizes, in tokens.
func WithChunking(chunkTokens, overlapTokens int) Option {
	return func(idx *Index) error {
		if chunkTokens <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d", chunkTokens)
		}
		if overlapTokens < 0 || overlapTokens >= chunkTokens {
			return fmt.Errorf("overlap must be in [0, chunk size), got %d", overlapTokens)
		}
		idx.chunkTokens = chunkTokens
		idx.overlapTokens = overlapTokens
		return nil
	}
}

// NewIndex creates a memory index over the given store and embedder.
func NewIndex(store storage.VectorStore, embedder ai.Embedder, opts ...Option) (*Index, error) {
	if store == nil {
		return nil, fmt.Errorf("store must not be nil")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder must not be nil")
	}

	idx := &Index{
		store:         store,
		embedder:      embedder,
		chunkTokens:   defaultChunkTokens,
		overlapTokens: defaultOverlapTokens,
		sampleSize:    100,
		logger:        slog.Default().With("component", "memory_index"),
	}
	for _, opt := range opts {
		if err := opt(idx); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Ingest chunks, embeds and persists a document's text. Returns the
// number of chunks stored. Persistence is all-or-nothing: an embedding
// or storage failure leaves no partial state behind.
func (idx *Index) Ingest(ctx context.Context, doc core.Document, text string) (int, error) {
	if err := core.RequireText(text); err != nil {
		return 0, err
	}
	if err := core.ValidateDocument(&doc); err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrValidation, err)
	}

	var chunks []string
	if doc.ContentType.IsTranscript() {
		chunks = chunk.SplitTranscript(text, idx.chunkTokens, idx.overlapTokens)
	} else {
		chunks = chunk.Split(text, idx.chunkTokens, idx.overlapTokens)
	}
	if len(chunks) == 0 {
		return 0, fmt.Errorf("%w: no chunks produced", core.ErrEmptyContent)
	}

	vectors, err := idx.embedder.EmbedTexts(ctx, chunks)
	if err != nil {
		return 0, fmt.Errorf("%w: embedding failed: %w", core.ErrExternalService, err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("%w: embedder returned %d vectors for %d chunks",
			core.ErrExternalService, len(vectors), len(chunks))
	}

	records := make([]*storage.MemoryRecord, len(chunks))
	for i, text := range chunks {
		c := &core.Chunk{
			DocumentID: doc.ID,
			Index:      i,
			Text:       text,
			CharLength: len(text),
		}
		records[i] = &storage.MemoryRecord{
			ID:       recordID(i, doc.ID),
			Vector:   vectors[i],
			Text:     text,
			Metadata: core.MetadataForChunk(&doc, c),
		}
	}

	if err := idx.store.Add(ctx, records...); err != nil {
		return 0, fmt.Errorf("%w: storing records failed: %w", core.ErrExternalService, err)
	}

	idx.logger.Info("content ingested",
		"content_id", doc.ID,
		"content_type", doc.ContentType,
		"chunks", len(records))
	return len(records), nil
}

// Retrieve returns up to limit results scoring at least threshold
// against the query, at most one per content ID, best first. Embedding
// or storage failures degrade to an empty result set; only a blank
// query is an error.
func (idx *Index) Retrieve(ctx context.Context, query string, limit int, threshold float64) ([]QueryResult, error) {
	if err := core.RequireQuery(query); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []QueryResult{}, nil
	}

	vector, err := idx.embedder.EmbedText(ctx, query)
	if err != nil {
		idx.logger.Error("query embedding failed", "error", err)
		return []QueryResult{}, nil
	}

	// Over-fetch so threshold and dedup filtering can still fill limit.
	matches, err := idx.store.Query(ctx, vector, limit*2)
	if err != nil {
		idx.logger.Error("vector query failed", "error", err)
		return []QueryResult{}, nil
	}

	seen := make(map[string]bool)
	results := make([]QueryResult, 0, limit)
	for _, match := range matches {
		score := 1 - match.Distance
		if score < threshold {
			continue
		}
		meta := match.Record.Metadata
		if seen[meta.ContentID] {
			continue
		}
		seen[meta.ContentID] = true

		results = append(results, QueryResult{
			ID:          match.Record.ID,
			ContentID:   meta.ContentID,
			Text:        match.Record.Text,
			Title:       meta.Title,
			Source:      meta.Source,
			Timestamp:   meta.Timestamp,
			ContentType: meta.ContentType,
			ChunkIndex:  meta.ChunkIndex,
			Score:       score,
		})
		if len(results) == limit {
			break
		}
	}

	idx.logger.Debug("retrieval complete",
		"query_length", len(query),
		"hits", len(results),
		"threshold", threshold)
	return results, nil
}

// Delete removes all records belonging to a content ID. Returns the
// number of records removed.
func (idx *Index) Delete(ctx context.Context, contentID string) (int, error) {
	if contentID == "" {
		return 0, fmt.Errorf("%w: content ID must not be empty", core.ErrValidation)
	}
	deleted, err := idx.store.DeleteContent(ctx, contentID)
	if err != nil {
		return 0, fmt.Errorf("%w: delete failed: %w", core.ErrExternalService, err)
	}
	idx.logger.Info("content deleted", "content_id", contentID, "records", deleted)
	return deleted, nil
}

// CollectStats reports the record count plus content type and source
// tallies taken from a bounded sample of stored metadata.
func (idx *Index) CollectStats(ctx context.Context) (*Stats, error) {
	count, err := idx.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count failed: %w", core.ErrExternalService, err)
	}

	sample, err := idx.store.Sample(ctx, idx.sampleSize)
	if err != nil {
		return nil, fmt.Errorf("%w: sample failed: %w", core.ErrExternalService, err)
	}

	stats := &Stats{
		Records:       count,
		ByContentType: make(map[core.ContentType]int),
		BySource:      make(map[string]int),
		Sampled:       len(sample),
	}
	for _, record := range sample {
		stats.ByContentType[record.Metadata.ContentType]++
		stats.BySource[record.Metadata.Source]++
	}
	return stats, nil
}

func recordID(index int, contentID string) string {
	return fmt.Sprintf("mem_%d_%s", index, contentID)
}
