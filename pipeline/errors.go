package pipeline

import "errors"

var (
	// ErrExtractorRequired indicates that no extractor was provided.
	ErrExtractorRequired = errors.New("extractor is required")

	// ErrClassifierRequired indicates that no classifier was provided.
	ErrClassifierRequired = errors.New("classifier is required")

	// ErrIndexRequired indicates that no similarity index was provided.
	ErrIndexRequired = errors.New("similarity index is required")
)
