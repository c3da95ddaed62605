package mock

import (
	"context"
	"strings"
	"sync"
)

// MockGenerator is a test double for ai.Generator.
// Behavior can be scripted two ways: GenerateFunc takes full control,
// or Script maps a prompt substring to a canned answer. Prompts that
// match nothing answer "none", which every validator in the pipeline
// treats as a null field.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	// Script maps a prompt substring to the answer to return.
	// The first matching key in insertion-independent map order wins,
	// so scripts should use mutually exclusive substrings.
	Script map[string]string

	mu        sync.Mutex
	callCount int
	prompts   []string
}

// NewMockGenerator creates a mock generator with default "none" behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// NewScriptedGenerator creates a mock generator answering from a
// substring-keyed script.
func NewScriptedGenerator(script map[string]string) *MockGenerator {
	return &MockGenerator{Script: script}
}

// Generate answers the prompt from the configured script or function.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}

	for key, answer := range m.Script {
		if strings.Contains(prompt, key) {
			return answer, nil
		}
	}
	return "none", nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Prompts returns a copy of every prompt seen so far, in call order.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Reset clears recorded state and custom behavior.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.prompts = nil
	m.GenerateFunc = nil
	m.Script = nil
}
