package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avallon/claimlens/ai"
	"github.com/avallon/claimlens/core"
)

// Extractor turns a claim narrative into a structured record by running
// one prompt per field against a text generation backend. Each field is
// independently fallible: a rejected or failed answer nulls that field
// and the chain continues.
type Extractor struct {
	generator ai.Generator
	logger    *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewExtractor creates a new entity extractor backed by the generator.
func NewExtractor(generator ai.Generator, opts ...Option) (*Extractor, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	e := &Extractor{
		generator: generator,
		logger:    slog.Default().With("component", "extractor"),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Extract runs the field chain over the narrative and folds the
// accepted answers into an ExtractedClaim.
//
// The returned record always has a non-empty IncidentDescription: when
// no usable summary is generated, it falls back to a truncated prefix
// of the narrative. When the backend is entirely unavailable, the
// record carries only that fallback description. Extract never fails.
func (e *Extractor) Extract(ctx context.Context, narrative string) *core.ExtractedClaim {
	claim := &core.ExtractedClaim{}
	detected := make([]string, 0, len(fieldSpecs))

	for _, spec := range fieldSpecs {
		value, ok := e.extractField(ctx, spec, narrative)
		if !ok && spec.fallback != nil {
			value, ok = spec.fallback(narrative), true
		}
		if !ok {
			continue
		}
		spec.assign(claim, value)
		detected = append(detected, spec.name)
	}

	claim.DetectedEntities = detected
	e.logger.Debug("extraction complete", "detected", len(detected))
	return claim
}

// extractField issues one prompt and validates the answer. Any failure
// is contained here: the field resolves to null and the caller moves on.
func (e *Extractor) extractField(ctx context.Context, spec fieldSpec, narrative string) (string, bool) {
	answer, err := e.generator.Generate(ctx, fmt.Sprintf(spec.prompt, narrative))
	if err != nil {
		e.logger.Debug("field generation failed", "field", spec.name, "err", err)
		return "", false
	}

	value, ok := spec.validate(ai.CleanResponse(answer), narrative)
	if !ok {
		e.logger.Debug("field answer rejected", "field", spec.name)
		return "", false
	}
	return value, true
}
