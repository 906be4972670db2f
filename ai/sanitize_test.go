package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeModelJSON(t *testing.T) {
	t.Run("strips markdown fences", func(t *testing.T) {
		in := "```json\n{\"is_query\": true}\n```"
		got := SanitizeModelJSON(in)
		assert.JSONEq(t, `{"is_query": true}`, got)
	})

	t.Run("passes clean JSON through", func(t *testing.T) {
		in := `{"confidence": 0.8}`
		assert.Equal(t, in, SanitizeModelJSON(in))
	})

	t.Run("repairs missing opening quote on key", func(t *testing.T) {
		in := `{"is_query": true, confidence": 0.7}`
		got := SanitizeModelJSON(in)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(got), &parsed))
		assert.Equal(t, 0.7, parsed["confidence"])
	})
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("extracts embedded object", func(t *testing.T) {
		in := "Sure, here is the analysis: {\"steps\": []} hope it helps"
		assert.Equal(t, `{"steps": []}`, ExtractJSONObject(in))
	})

	t.Run("returns empty when no object present", func(t *testing.T) {
		assert.Equal(t, "", ExtractJSONObject("no structured data at all"))
	})

	t.Run("spans nested objects", func(t *testing.T) {
		in := `prefix {"a": {"b": 1}} suffix`
		assert.Equal(t, `{"a": {"b": 1}}`, ExtractJSONObject(in))
	})
}
