// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Generator,
// and ai.AIProvider for use in unit tests. The mocks allow tests to run
// without external AI service dependencies and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vec, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Scripted generation answers
//	gen := mock.NewScriptedGenerator(map[string]string{
//	    "full name": "Maria Lopez",
//	    "phone":     "555-0100",
//	})
//
//	// Custom behavior injection
//	gen.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
//	    return "", core.ErrModelUnavailable
//	}
//
// # Default Behavior
//
//   - MockEmbedder: deterministic unit vectors derived from a text hash,
//     so identical text always embeds identically
//   - MockGenerator: answers "none" for any unscripted prompt
//   - MockProvider: aggregates mock embedder and generator
package mock
