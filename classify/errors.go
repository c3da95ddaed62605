package classify

import "errors"

// ErrGeneratorRequired indicates a nil generator was passed to NewClassifier.
var ErrGeneratorRequired = errors.New("generator is required")
