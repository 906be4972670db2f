package blueprint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonlabs/retrace/ai/mock"
	"github.com/halcyonlabs/retrace/core"
)

const validResponse = `{
  "steps": [
    {"step": 1, "tool": "Notion", "action": "Outlined the thread", "note": "Planned structure"},
    {"step": 2, "tool": "Typefully", "action": "Drafted and scheduled", "note": "Thread tooling"}
  ],
  "content_type": "twitter_thread",
  "confidence": 0.85,
  "insights": ["Structured thread", "Scheduled posting"]
}`

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestGenerateBlankContent(t *testing.T) {
	g := NewGenerator(nil)

	_, err := g.Generate(context.Background(), "  \n ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrValidation))
}

func TestGenerateWithModel(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.Responses = []string{validResponse}
	g := NewGenerator(completer)

	bp, err := g.Generate(context.Background(), "🧵 my thread about testing")
	require.NoError(t, err)
	assert.Equal(t, "twitter_thread", bp.ContentType)
	assert.Equal(t, 0.85, bp.Confidence)
	require.Len(t, bp.Steps, 2)
	assert.Equal(t, "Notion", bp.Steps[0].Tool)
}

func TestGenerateRecoversEmbeddedJSON(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.Responses = []string{
		"Sure! Here is the workflow analysis you asked for:\n" + validResponse + "\nHope that helps!",
	}
	g := NewGenerator(completer)

	bp, err := g.Generate(context.Background(), "some content")
	require.NoError(t, err)
	assert.Equal(t, "twitter_thread", bp.ContentType)
	require.Len(t, bp.Steps, 2)
}

func TestGenerateRenumbersSteps(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.Responses = []string{`{
      "steps": [
        {"step": 3, "tool": "A", "action": "a", "note": ""},
        {"step": 7, "tool": "B", "action": "b", "note": ""},
        {"step": 1, "tool": "C", "action": "c", "note": ""}
      ],
      "content_type": "text",
      "confidence": 0.7,
      "insights": []
    }`}
	g := NewGenerator(completer)

	bp, err := g.Generate(context.Background(), "content")
	require.NoError(t, err)
	for i, step := range bp.Steps {
		assert.Equal(t, i+1, step.Step)
	}
}

func TestGenerateModelFailureFallsBack(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.Err = fmt.Errorf("model unavailable")
	g := NewGenerator(completer)

	bp, err := g.Generate(context.Background(), words(50))
	require.NoError(t, err)
	assert.Equal(t, fallbackConfidence, bp.Confidence)
	assert.Len(t, bp.Steps, 2)
}

func TestGenerateUnparseableResponseFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"prose only", "I could not produce a workflow for this."},
		{"empty steps", `{"steps": [], "content_type": "text", "confidence": 0.7}`},
		{"bad confidence", `{"steps": [{"step": 1, "tool": "A", "action": "a"}], "confidence": 2.0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := mock.NewMockCompleter()
			completer.Responses = []string{tt.response}
			g := NewGenerator(completer)

			bp, err := g.Generate(context.Background(), words(300))
			require.NoError(t, err)
			assert.Equal(t, fallbackConfidence, bp.Confidence)
			assert.Len(t, bp.Steps, 3)
		})
	}
}

func TestFallbackLengthBands(t *testing.T) {
	t.Run("short content gets two steps", func(t *testing.T) {
		bp := Fallback(words(50))
		require.Len(t, bp.Steps, 2)
		assert.Equal(t, "Quick Notes", bp.Steps[0].Tool)
		assert.Equal(t, "Mobile App", bp.Steps[1].Tool)
		assert.Equal(t, "text_content", bp.ContentType)
		assert.Equal(t, 0.6, bp.Confidence)
		assert.Equal(t, []string{
			"Analysis completed with fallback method",
			"Consider uploading more content for better insights",
		}, bp.Insights)
	})

	t.Run("medium content gets three steps", func(t *testing.T) {
		bp := Fallback(words(300))
		require.Len(t, bp.Steps, 3)
		assert.Equal(t, "Brainstorming", bp.Steps[0].Tool)
	})

	t.Run("long content gets four steps", func(t *testing.T) {
		bp := Fallback(words(600))
		require.Len(t, bp.Steps, 4)
		assert.Equal(t, "Research Tool", bp.Steps[0].Tool)
		assert.Equal(t, "Grammarly", bp.Steps[3].Tool)
	})

	t.Run("boundaries", func(t *testing.T) {
		assert.Len(t, Fallback(words(99)).Steps, 2)
		assert.Len(t, Fallback(words(100)).Steps, 3)
		assert.Len(t, Fallback(words(500)).Steps, 3)
		assert.Len(t, Fallback(words(501)).Steps, 4)
	})

	t.Run("steps contiguous from one", func(t *testing.T) {
		for _, n := range []int{10, 200, 800} {
			bp := Fallback(words(n))
			for i, step := range bp.Steps {
				assert.Equal(t, i+1, step.Step)
			}
		}
	})
}

func TestFallbackPure(t *testing.T) {
	content := words(250)
	first := Fallback(content)
	assert.Equal(t, first, Fallback(content))
}
