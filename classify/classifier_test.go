package classify

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

func TestClassifyBlankInput(t *testing.T) {
	c := NewClassifier(nil)

	_, err := c.Classify(context.Background(), "   \n  ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrValidation))
}

func TestClassifyWithModel(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.Responses = []string{
		`{"is_query": true, "confidence": 0.95, "reasoning": "asks about the past"}`,
	}
	c := NewClassifier(completer)

	result, err := c.Classify(context.Background(), "What did I write last month?")
	require.NoError(t, err)
	assert.True(t, result.IsQuery)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, "asks about the past", result.Reasoning)
	assert.Equal(t, 1, completer.CallCount())
}

func TestClassifyWithFencedModelResponse(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.Responses = []string{
		"```json\n{\"is_query\": false, \"confidence\": 0.8, \"reasoning\": \"a post\"}\n```",
	}
	c := NewClassifier(completer)

	result, err := c.Classify(context.Background(), "Here's my new post about testing")
	require.NoError(t, err)
	assert.False(t, result.IsQuery)
	assert.Equal(t, 0.8, result.Confidence)
}

func TestClassifyModelFailureFallsBack(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.Err = fmt.Errorf("connection refused")
	c := NewClassifier(completer)

	result, err := c.Classify(context.Background(), "What did I say about burnout?")
	require.NoError(t, err)
	assert.True(t, result.IsQuery)
}

func TestClassifyMalformedModelResponseFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "I think this is a query."},
		{"missing is_query", `{"confidence": 0.9, "reasoning": "x"}`},
		{"missing confidence", `{"is_query": true, "reasoning": "x"}`},
		{"confidence out of range", `{"is_query": true, "confidence": 1.5, "reasoning": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := mock.NewMockCompleter()
			completer.Responses = []string{tt.response}
			c := NewClassifier(completer)

			result, err := c.Classify(context.Background(), "What did I say about burnout?")
			require.NoError(t, err)

			// Heuristic takes over and still recognizes the question.
			assert.True(t, result.IsQuery)
		})
	}
}

func TestClassifyWithoutModel(t *testing.T) {
	c := NewClassifier(nil)

	result, err := c.Classify(context.Background(), "What did I say about burnout?")
	require.NoError(t, err)
	assert.True(t, result.IsQuery)
	assert.GreaterOrEqual(t, result.Confidence, 0.5)
}

func TestParseResultStrict(t *testing.T) {
	_, err := parseResult(`{"is_query": true, "confidence": -0.1}`)
	assert.True(t, errors.Is(err, core.ErrParse))

	result, err := parseResult(`{"is_query": false, "confidence": 0.0}`)
	require.NoError(t, err)
	assert.False(t, result.IsQuery)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestHeuristicQuery(t *testing.T) {
	result := Heuristic("What did I say about burnout?")
	assert.True(t, result.IsQuery)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Contains(t, result.Reasoning, "Query indicators")
}

func TestHeuristicContent(t *testing.T) {
	thread := "🧵 Just published my thoughts on testing today.\n\n1/ Writing tests first changes how you design.\n\n2/ It also keeps interfaces honest. " +
		strings.Repeat("More detail on the practice of test-driven development and how it shapes module boundaries. ", 10)

	result := Heuristic(thread)
	assert.False(t, result.IsQuery)
	assert.True(t, result.Confidence >= 0.5 && result.Confidence <= 0.9)
}

func TestHeuristicShortInputLeansQuery(t *testing.T) {
	result := Heuristic("burnout notes")
	// Short input adds query evidence but nothing else does.
	assert.True(t, result.IsQuery)
	assert.Equal(t, 0.9, result.Confidence)
}

func TestHeuristicPure(t *testing.T) {
	input := "How do I structure a thread? Here's what worked today."
	first := Heuristic(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Heuristic(input))
	}
}

func TestHeuristicConfidenceBounds(t *testing.T) {
	inputs := []string{
		"What did I say about burnout?",
		"Just published something today",
		strings.Repeat("word ", 150),
		"x",
		"How? Why? What? When? Where?",
	}
	for _, input := range inputs {
		result := Heuristic(input)
		assert.GreaterOrEqual(t, result.Confidence, 0.5, "input %q", input)
		assert.LessOrEqual(t, result.Confidence, 0.9, "input %q", input)
	}
}
