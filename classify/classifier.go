package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/halcyonlabs/retrace/ai"
	"github.com/halcyonlabs/retrace/core"
)

const (
	classifyTemperature = 0.1
	classifyMaxTokens   = 200
	maxPromptInput      = 1000
)

const classifyPromptTemplate = `Analyze this input to determine if it's a QUERY (asking about past content) or CONTENT (to be analyzed for workflow).

Input: %s

Return JSON:
{
  "is_query": true/false,
  "confidence": 0.0-1.0,
  "reasoning": "Brief explanation"
}

Queries typically ask questions, use question words, or reference "past" content.
Content is usually statements, posts, articles, or creative work to analyze.`

// Result is the outcome of input classification.
type Result struct {
	IsQuery    bool    `json:"is_query"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Classifier decides whether free-form input is a retrieval query or
// content to analyze. A language model is consulted first when
// available; a deterministic heuristic covers model failures and
// operation without a model.
type Classifier struct {
	completer ai.Completer
	logger    *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used by the classifier.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClassifier creates a classifier. completer may be nil, in which
// case every classification uses the heuristic.
func NewClassifier(completer ai.Completer, opts ...Option) *Classifier {
	c := &Classifier{
		completer: completer,
		logger:    slog.Default().With("component", "classifier"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify determines the intent of the input. Model failures never
// surface; the heuristic result is returned instead. Only blank input
// is an error.
func (c *Classifier) Classify(ctx context.Context, input string) (Result, error) {
	if err := core.RequireText(input); err != nil {
		return Result{}, err
	}

	if c.completer == nil {
		return Heuristic(input), nil
	}

	result, err := c.classifyWithModel(ctx, input)
	if err != nil {
		c.logger.Warn("model classification failed, using heuristic", "error", err)
		return Heuristic(input), nil
	}
	return result, nil
}

func (c *Classifier) classifyWithModel(ctx context.Context, input string) (Result, error) {
	prompt := fmt.Sprintf(classifyPromptTemplate, truncate(input, maxPromptInput))

	response, err := c.completer.Complete(ctx, prompt, classifyTemperature, classifyMaxTokens)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", core.ErrExternalService, err)
	}
	return parseResult(response)
}

// parseResult strictly decodes a model response. Missing required
// fields or an out-of-range confidence are parse errors so callers fall
// through to the heuristic.
func parseResult(response string) (Result, error) {
	cleaned := ai.SanitizeModelJSON(response)

	var raw struct {
		IsQuery    *bool    `json:"is_query"`
		Confidence *float64 `json:"confidence"`
		Reasoning  string   `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return Result{}, fmt.Errorf("%w: %w", core.ErrParse, err)
	}
	if raw.IsQuery == nil {
		return Result{}, fmt.Errorf("%w: missing is_query field", core.ErrParse)
	}
	if raw.Confidence == nil {
		return Result{}, fmt.Errorf("%w: missing confidence field", core.ErrParse)
	}
	if *raw.Confidence < 0 || *raw.Confidence > 1 {
		return Result{}, fmt.Errorf("%w: confidence %v out of range", core.ErrParse, *raw.Confidence)
	}

	return Result{
		IsQuery:    *raw.IsQuery,
		Confidence: *raw.Confidence,
		Reasoning:  raw.Reasoning,
	}, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
