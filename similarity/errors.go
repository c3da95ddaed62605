package similarity

import "errors"

var (
	// ErrEmbedderRequired indicates that no embedder was provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrPathRequired indicates that no index file paths were provided.
	ErrPathRequired = errors.New("index file paths are required")
)
