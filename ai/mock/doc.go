// Package mock provides deterministic test doubles for the ai interfaces.
//
// MockEmbedder produces repeatable unit-length vectors from a text hash so
// similarity math in tests is stable across runs. MockCompleter plays back
// scripted responses or delegates to an injected function.
package mock
