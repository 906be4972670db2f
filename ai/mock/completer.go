package mock

import (
	"context"
	"sync"
)

// MockCompleter is a test double for ai.Completer.
// Responses can be scripted in order or produced by a custom function.
type MockCompleter struct {
	// CompleteFunc is called by Complete if set.
	CompleteFunc func(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)

	// Responses is returned in order for successive calls when CompleteFunc
	// is nil. When exhausted, the last response repeats.
	Responses []string

	// Err, if set, is returned by every call.
	Err error

	mu        sync.Mutex
	callCount int
	prompts   []string
}

// NewMockCompleter creates a mock completer that returns empty responses.
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{}
}

// Complete returns the next scripted response or invokes CompleteFunc.
func (m *MockCompleter) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	m.mu.Lock()
	idx := m.callCount
	m.callCount++
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, temperature, maxTokens)
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx], nil
}

// CallCount returns the number of times Complete was called.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Prompts returns a copy of all prompts passed to Complete.
func (m *MockCompleter) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Reset clears recorded calls and injected behavior.
func (m *MockCompleter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.prompts = nil
	m.CompleteFunc = nil
	m.Responses = nil
	m.Err = nil
}
