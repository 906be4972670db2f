package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonlabs/retrace/core"
)

func TestMarshalRecordRoundTrip(t *testing.T) {
	record := &MemoryRecord{
		ID:     "mem_0_doc-1",
		Vector: []float32{0.6, 0.8},
		Text:   "the cat sat on the mat",
		Metadata: core.ChunkMetadata{
			Title:       "Cats",
			Source:      "notes.txt",
			ContentType: core.ContentTypeText,
			ContentID:   "doc-1",
			ChunkIndex:  0,
			Timestamp:   "2026-08-29T10:00:00Z",
			ChunkLength: 22,
		},
	}

	data, err := MarshalRecord(record)
	require.NoError(t, err)

	got, err := UnmarshalRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestUnmarshalRecordInvalid(t *testing.T) {
	_, err := UnmarshalRecord([]byte("not json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSerializationFailed))
}

func TestNormalizeVector(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		v := NormalizeVector([]float32{3, 4})
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := NormalizeVector([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, v)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, NormalizeVector(nil))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []float32{3, 4}
		NormalizeVector(in)
		assert.Equal(t, []float32{3, 4}, in)
	})
}

func TestCosineDistance(t *testing.T) {
	a := NormalizeVector([]float32{1, 0})
	b := NormalizeVector([]float32{0, 1})

	assert.InDelta(t, 0.0, CosineDistance(a, a), 1e-6)
	assert.InDelta(t, 1.0, CosineDistance(a, b), 1e-6)
	assert.InDelta(t, 2.0, CosineDistance(a, []float32{-1, 0}), 1e-6)
}
