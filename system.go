// Copyright 2026 Halcyon Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package retrace

import (
	"log/slog"

	"github.com/halcyonlabs/retrace/ai"
	"github.com/halcyonlabs/retrace/ai/openai"
	"github.com/halcyonlabs/retrace/blueprint"
	"github.com/halcyonlabs/retrace/classify"
	"github.com/halcyonlabs/retrace/ingest"
	"github.com/halcyonlabs/retrace/memory"
	"github.com/halcyonlabs/retrace/orchestrate"
	"github.com/halcyonlabs/retrace/storage"
	"github.com/halcyonlabs/retrace/storage/badger"
)

// System bundles the full processing stack: vector store, model
// provider, memory index, classifier, blueprint generator, and
// orchestrator.
type System struct {
	store      storage.VectorStore
	provider   ai.Provider
	index      *memory.Index
	classifier *classify.Classifier
	generator  *blueprint.Generator
	orch       *orchestrate.Orchestrator
	logger     *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig *ai.Config
	store    storage.VectorStore
}

// WithAIConfig overrides the default model host and model names.
func WithAIConfig(cfg *ai.Config) SystemOption {
	return func(o *systemOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithStore uses an already-open vector store instead of opening the
// default BadgerDB backend. The system takes ownership and closes it.
func WithStore(store storage.VectorStore) SystemOption {
	return func(o *systemOptions) {
		o.store = store
	}
}

// NewSystem opens (or receives) a vector store, connects the model
// provider, and wires the processing stages together. filePath is the
// BadgerDB directory; it is ignored when WithStore is given.
func NewSystem(filePath string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	store := options.store
	if store == nil {
		var err error
		store, err = badger.NewStore(filePath)
		if err != nil {
			return nil, err
		}
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		store.Close()
		return nil, err
	}

	index, err := memory.NewIndex(store, provider.Embedder(),
		memory.WithCompleter(provider.Completer()))
	if err != nil {
		provider.Close()
		store.Close()
		return nil, err
	}

	classifier := classify.NewClassifier(provider.Completer())
	generator := blueprint.NewGenerator(provider.Completer())

	orch, err := orchestrate.NewOrchestrator(index, classifier, generator)
	if err != nil {
		provider.Close()
		store.Close()
		return nil, err
	}

	return &System{
		store:      store,
		provider:   provider,
		index:      index,
		classifier: classifier,
		generator:  generator,
		orch:       orch,
		logger:     slog.Default(),
	}, nil
}

// Close releases the model provider and the vector store.
func (s *System) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing vector store", "err", err)
		return err
	}
	return nil
}

// Index returns the memory index.
func (s *System) Index() *memory.Index {
	return s.index
}

// Classifier returns the input classifier.
func (s *System) Classifier() *classify.Classifier {
	return s.classifier
}

// Generator returns the blueprint generator.
func (s *System) Generator() *blueprint.Generator {
	return s.generator
}

// Orchestrator returns the unified processor.
func (s *System) Orchestrator() *orchestrate.Orchestrator {
	return s.orch
}

// NewIngestPipeline creates a batch ingestion pipeline over the
// system's memory index.
func (s *System) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(s.index, opts...)
}
