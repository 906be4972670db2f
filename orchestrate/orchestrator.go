package orchestrate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/halcyonlabs/retrace/blueprint"
	"github.com/halcyonlabs/retrace/classify"
	"github.com/halcyonlabs/retrace/core"
	"github.com/halcyonlabs/retrace/memory"
)

const (
	defaultRetrieveLimit     = 5
	defaultRetrieveThreshold = 0.3
)

// Analysis carries the classification outcome and synthesized insights.
type Analysis struct {
	ContentType string   `json:"contentType"`
	Confidence  float64  `json:"confidence"`
	Insights    []string `json:"insights"`
}

// Response is the unified result of processing one input.
// Its shape is identical whether the run was fully serviced or
// degraded to fallbacks.
type Response struct {
	Memories  []memory.QueryResult `json:"memories"`
	Blueprint []blueprint.Step     `json:"blueprint"`
	Analysis  Analysis             `json:"analysis"`
}

// Orchestrator coordinates classification, retrieval, and workflow
// analysis over a single input.
type Orchestrator struct {
	index      *memory.Index
	classifier *classify.Classifier
	generator  *blueprint.Generator
	limit      int
	threshold  float64
	logger     *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithLogger sets the logger used by the orchestrator.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithRetrieval overrides the default retrieval limit and threshold.
func WithRetrieval(limit int, threshold float64) Option {
	return func(o *Orchestrator) error {
		if limit <= 0 {
			return fmt.Errorf("limit must be positive, got %d", limit)
		}
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("threshold must be in [0, 1], got %v", threshold)
		}
		o.limit = limit
		o.threshold = threshold
		return nil
	}
}

// NewOrchestrator wires the three processing stages together.
func NewOrchestrator(index *memory.Index, classifier *classify.Classifier, generator *blueprint.Generator, opts ...Option) (*Orchestrator, error) {
	if index == nil {
		return nil, fmt.Errorf("index must not be nil")
	}
	if classifier == nil {
		return nil, fmt.Errorf("classifier must not be nil")
	}
	if generator == nil {
		return nil, fmt.Errorf("generator must not be nil")
	}

	o := &Orchestrator{
		index:      index,
		classifier: classifier,
		generator:  generator,
		limit:      defaultRetrieveLimit,
		threshold:  defaultRetrieveThreshold,
		logger:     slog.Default().With("component", "orchestrator"),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Process classifies the input, runs retrieval (and for content, the
// workflow analysis concurrently), and merges the results. Internal
// fallbacks never surface as errors; only blank input fails.
func (o *Orchestrator) Process(ctx context.Context, input string) (*Response, error) {
	if err := core.RequireText(input); err != nil {
		return nil, err
	}

	classification, err := o.classifier.Classify(ctx, input)
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		memories []memory.QueryResult
		steps    []blueprint.Step
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		memories = o.retrieve(ctx, input)
	}()

	if !classification.IsQuery {
		wg.Add(1)
		go func() {
			defer wg.Done()
			steps = o.analyze(ctx, input)
		}()
	}
	wg.Wait()

	contentType := "content"
	if classification.IsQuery {
		contentType = "query"
	}

	response := &Response{
		Memories:  memories,
		Blueprint: steps,
		Analysis: Analysis{
			ContentType: contentType,
			Confidence:  classification.Confidence,
			Insights:    buildInsights(input, memories, steps, classification.IsQuery),
		},
	}

	o.logger.Info("processing complete",
		"is_query", classification.IsQuery,
		"memories", len(memories),
		"blueprint_steps", len(steps))
	return response, nil
}

// retrieve never fails: retrieval errors degrade to zero memories.
func (o *Orchestrator) retrieve(ctx context.Context, input string) []memory.QueryResult {
	results, err := o.index.Retrieve(ctx, input, o.limit, o.threshold)
	if err != nil {
		o.logger.Error("memory retrieval failed", "error", err)
		return []memory.QueryResult{}
	}
	if len(results) > 0 {
		results = o.index.Enhance(ctx, input, results)
	}
	return results
}

// analyze never fails: generation errors degrade to an empty timeline.
func (o *Orchestrator) analyze(ctx context.Context, input string) []blueprint.Step {
	bp, err := o.generator.Generate(ctx, input)
	if err != nil {
		o.logger.Error("blueprint generation failed", "error", err)
		return nil
	}
	return bp.Steps
}
