package retrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonlabs/retrace/ai"
	"github.com/halcyonlabs/retrace/storage/badger"
)

func TestNewSystemWithStore(t *testing.T) {
	store, err := badger.NewMemoryStore()
	require.NoError(t, err)

	sys, err := NewSystem("", WithStore(store))
	require.NoError(t, err)
	defer sys.Close()

	assert.NotNil(t, sys.Index())
	assert.NotNil(t, sys.Classifier())
	assert.NotNil(t, sys.Generator())
	assert.NotNil(t, sys.Orchestrator())
}

func TestNewSystemOnDisk(t *testing.T) {
	sys, err := NewSystem(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sys.Close())
}

func TestNewSystemWithAIConfig(t *testing.T) {
	store, err := badger.NewMemoryStore()
	require.NoError(t, err)

	cfg := ai.NewConfig(
		ai.WithHost("http://models.internal:8080"),
		ai.WithEmbeddingModel("custom-embed"),
	)
	sys, err := NewSystem("", WithStore(store), WithAIConfig(cfg))
	require.NoError(t, err)
	defer sys.Close()

	pipeline, err := sys.NewIngestPipeline()
	require.NoError(t, err)
	pipeline.Release()
}
