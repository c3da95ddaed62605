package extract

import "errors"

// ErrGeneratorRequired indicates a nil generator was passed to NewExtractor.
var ErrGeneratorRequired = errors.New("generator is required")
