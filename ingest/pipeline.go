package ingest

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/halcyonlabs/retrace/core"
	"github.com/halcyonlabs/retrace/memory"
	"github.com/halcyonlabs/retrace/textutil"
)

// Source is one document queued for batch ingestion.
type Source struct {
	Document core.Document
	Text     string
}

// Result reports the outcome of ingesting one source. Err is nil on
// success. DuplicateOf names the earlier document in the batch whose
// content fingerprint matched; such sources are skipped, not stored.
type Result struct {
	ContentID   string
	Chunks      int
	DuplicateOf string
	Err         error
}

// Pipeline ingests batches of documents concurrently. Each document is
// cleaned according to its content type and handed to the memory index
// as an independent job; one failing document never aborts its
// siblings.
type Pipeline struct {
	index  *memory.Index
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline over the given index.
func NewPipeline(index *memory.Index, opts ...Option) (*Pipeline, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		index:  index,
		pool:   pool,
		logger: slog.Default().With("component", "ingest_pipeline"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	return p, nil
}

// IngestAll processes every source on the worker pool and blocks until
// all jobs finish. Results are returned in source order; per-job errors
// are recorded in the corresponding Result and logged, never returned.
func (p *Pipeline) IngestAll(ctx context.Context, sources []Source) []Result {
	results := make([]Result, len(sources))

	// Fingerprint each source up front so identical payloads submitted
	// in the same batch are stored once.
	seen := make(map[core.Fingerprint]string, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		fp := core.FingerprintFromContent(src.Text)
		if first, ok := seen[fp]; ok {
			results[i] = Result{
				ContentID:   src.Document.ID,
				DuplicateOf: first,
			}
			p.logger.Info("skipping duplicate content",
				"content_id", src.Document.ID,
				"duplicate_of", first)
			continue
		}
		seen[fp] = src.Document.ID

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			results[i] = p.ingestOne(ctx, src)
		})
		if err != nil {
			// Pool rejected the job (released or overloaded); run
			// inline so the batch still completes.
			results[i] = p.ingestOne(ctx, src)
			wg.Done()
		}
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	p.logger.Info("batch ingestion complete",
		"sources", len(sources),
		"failed", failed)
	return results
}

func (p *Pipeline) ingestOne(ctx context.Context, src Source) Result {
	text := cleanFor(src.Document.ContentType, src.Text)

	chunks, err := p.index.Ingest(ctx, src.Document, text)
	if err != nil {
		p.logger.Error("document ingestion failed",
			"content_id", src.Document.ID,
			"error", err)
	}
	return Result{
		ContentID: src.Document.ID,
		Chunks:    chunks,
		Err:       err,
	}
}

// cleanFor applies the content-type appropriate text cleanup before
// chunking. Plain text passes through untouched.
func cleanFor(ct core.ContentType, text string) string {
	if ct.IsTranscript() {
		return textutil.CleanTranscript(text)
	}
	if ct == core.ContentTypeWeb {
		return textutil.CleanSocialText(text)
	}
	return text
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
