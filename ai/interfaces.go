package ai

import "context"

// Embedder generates vector embeddings from text for similarity search.
// Vectors are L2-normalized so that inner product equals cosine similarity.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a normalized embedding for a single text string.
	// Returns an error wrapping core.ErrModelUnavailable if the backing
	// model cannot be reached; implementations never return zero vectors
	// in place of an error.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates normalized embeddings for multiple texts in a
	// batch. The returned slice matches the order of the input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces raw completion text for a single prompt.
// The output is an untyped string channel: callers do their own
// parsing and validation per prompt.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate returns the raw model output for the prompt.
	// Returns an error wrapping core.ErrModelUnavailable when the
	// backend cannot be reached within the configured timeout.
	Generate(ctx context.Context, prompt string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and owns the Embedder and
// Generator instances so they share configuration and resources.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Generator returns the text generation service.
	// The returned Generator is safe for concurrent use.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
