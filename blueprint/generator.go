package blueprint

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/halcyonlabs/retrace/ai"
	"github.com/halcyonlabs/retrace/core"
)

const (
	generateTemperature = 0.7
	generateMaxTokens   = 1500
	maxPromptContent    = 4000
)

const blueprintPromptTemplate = `You are a creativity historian AI. Given this content, return the most likely timeline of steps taken to create it.

Analyze the content for:
- Structure and organization patterns
- Tone and style indicators
- Tool usage hints
- Creative process markers

Content to analyze:
%s

Return a JSON response with this exact structure:
{
  "steps": [
    {
      "step": 1,
      "tool": "Tool name",
      "action": "What was done",
      "note": "Style/approach insight"
    }
  ],
  "content_type": "Type of content",
  "confidence": 0.85,
  "insights": ["Key insight 1", "Key insight 2"]
}

Focus on realistic, practical steps. Infer tools based on content structure and style.`

// Generator reconstructs creative workflows from content. The language
// model is consulted first when available; a deterministic fallback
// keyed on content length covers model failures.
type Generator struct {
	completer ai.Completer
	logger    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used by the generator.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a generator. completer may be nil, in which
// case every blueprint comes from the fallback.
func NewGenerator(completer ai.Completer, opts ...Option) *Generator {
	g := &Generator{
		completer: completer,
		logger:    slog.Default().With("component", "blueprint_generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a blueprint for the content. Model and parse
// failures never surface; the fallback blueprint is returned instead.
// Only blank content is an error.
func (g *Generator) Generate(ctx context.Context, content string) (Blueprint, error) {
	if err := core.RequireText(content); err != nil {
		return Blueprint{}, err
	}

	if g.completer == nil {
		return Fallback(content), nil
	}

	bp, err := g.generateWithModel(ctx, content)
	if err != nil {
		g.logger.Warn("model blueprint failed, using fallback", "error", err)
		return Fallback(content), nil
	}
	return bp, nil
}

func (g *Generator) generateWithModel(ctx context.Context, content string) (Blueprint, error) {
	prompt := fmt.Sprintf(blueprintPromptTemplate, truncate(content, maxPromptContent))

	response, err := g.completer.Complete(ctx, prompt, generateTemperature, generateMaxTokens)
	if err != nil {
		return Blueprint{}, fmt.Errorf("%w: %w", core.ErrExternalService, err)
	}

	bp, err := parseBlueprint(response)
	if err == nil {
		return bp, nil
	}

	// The model often wraps its JSON in prose. Try the outermost
	// object before giving up.
	if fragment := ai.ExtractJSONObject(response); fragment != "" {
		if bp, err := parseBlueprint(fragment); err == nil {
			return bp, nil
		}
	}
	return Blueprint{}, err
}

func parseBlueprint(response string) (Blueprint, error) {
	cleaned := ai.SanitizeModelJSON(response)

	var bp Blueprint
	if err := json.Unmarshal([]byte(cleaned), &bp); err != nil {
		return Blueprint{}, fmt.Errorf("%w: %w", core.ErrParse, err)
	}
	if len(bp.Steps) == 0 {
		return Blueprint{}, fmt.Errorf("%w: blueprint has no steps", core.ErrParse)
	}
	if bp.Confidence < 0 || bp.Confidence > 1 {
		return Blueprint{}, fmt.Errorf("%w: confidence %v out of range", core.ErrParse, bp.Confidence)
	}

	// Models are unreliable about numbering; renumber contiguously.
	for i := range bp.Steps {
		bp.Steps[i].Step = i + 1
	}
	return bp, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
