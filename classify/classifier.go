package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avallon/claimlens/ai"
	"github.com/avallon/claimlens/core"
)

// completenessField is one of the fields whose absence reduces the
// completeness score.
type completenessField struct {
	name    string
	missing func(*core.ExtractedClaim) bool
}

var completenessFields = []completenessField{
	{"claimant_name", func(c *core.ExtractedClaim) bool { return c.ClaimantName == "" }},
	{"incident_datetime", func(c *core.ExtractedClaim) bool { return c.IncidentDatetime == "" }},
	{"claimed_amount", func(c *core.ExtractedClaim) bool { return c.ClaimedAmount == nil }},
}

// missingFieldPenalty is subtracted from the score per missing field.
const missingFieldPenalty = 0.25

// Classifier derives a validity/fraud classification from an extracted
// claim and its source narrative. Phase one is deterministic
// completeness scoring; phase two is an optional fraud-signal pass
// against the generation backend, corroborated by keyword checks so a
// model cannot assert what the narrative does not support.
type Classifier struct {
	generator    ai.Generator
	fraudEnabled bool
	logger       *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithoutFraudSignal disables the secondary fraud-indicator pass.
// Completeness scoring is unaffected; the pass is a bonus signal.
func WithoutFraudSignal() Option {
	return func(c *Classifier) error {
		c.fraudEnabled = false
		return nil
	}
}

// NewClassifier creates a new claim classifier backed by the generator.
func NewClassifier(generator ai.Generator, opts ...Option) (*Classifier, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	c := &Classifier{
		generator:    generator,
		fraudEnabled: true,
		logger:       slog.Default().With("component", "classifier"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Classify scores the extracted claim against its narrative.
//
// The result is a pure function of (extracted, narrative) given a
// deterministic generator. Backend failures during the fraud pass are
// skipped silently; Classify itself never fails. A nil extracted record
// yields the processing-error fallback result.
func (c *Classifier) Classify(ctx context.Context, extracted *core.ExtractedClaim, narrative string) *core.ClassificationResult {
	if extracted == nil {
		c.logger.Warn("classifying nil extraction, returning fallback result")
		return FallbackResult()
	}

	score := 1.0
	var flags []string
	var missing []string

	for _, field := range completenessFields {
		if !field.missing(extracted) {
			continue
		}
		score -= missingFieldPenalty
		flags = append(flags, "missing_"+field.name)
		missing = append(missing, field.name)
	}

	if c.fraudEnabled {
		for _, indicator := range c.fraudSignals(ctx, narrative) {
			score -= indicator.penalty
			flags = append(flags, indicator.flag)
		}
	}

	score = clampScore(score)
	label := decideLabel(score, len(flags), len(missing))

	return &core.ClassificationResult{
		Label:              label,
		Score:              score,
		Rationale:          buildRationale(score, missing, flags),
		PolicyFlags:        flags,
		SuggestedNextSteps: nextSteps(label, len(flags) > 0),
	}
}

// FallbackResult is the total-failure classification: returned when no
// extraction is available to score.
func FallbackResult() *core.ClassificationResult {
	return &core.ClassificationResult{
		Label:              core.LabelInvalid,
		Score:              0.5,
		Rationale:          "Unable to classify due to processing error",
		PolicyFlags:        []string{"processing_error"},
		SuggestedNextSteps: []string{"manual_review"},
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// decideLabel applies the precedence rule: fraud conditions first, then
// invalid conditions, then valid.
func decideLabel(score float64, flagCount, missingCount int) core.Label {
	switch {
	case score < 0.3 || flagCount >= 3:
		return core.LabelFraudulent
	case score < 0.6 || missingCount >= 3:
		return core.LabelInvalid
	default:
		return core.LabelValid
	}
}

// buildRationale renders a deterministic human-readable summary of the
// score derivation.
func buildRationale(score float64, missing, flags []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score %.2f.", score)
	if len(missing) > 0 {
		fmt.Fprintf(&b, " Missing fields: %s.", strings.Join(missing, ", "))
	}
	if len(flags) > 0 {
		fmt.Fprintf(&b, " Flags: %s.", strings.Join(flags, ", "))
	} else {
		b.WriteString(" No red flags detected.")
	}
	return b.String()
}

// nextSteps is a deterministic lookup keyed by label and whether any
// flags were raised.
func nextSteps(label core.Label, flagged bool) []string {
	switch label {
	case core.LabelFraudulent:
		return []string{"escalate_to_fraud_team", "request_police_report", "verify_identity"}
	case core.LabelInvalid:
		return []string{"request_missing_information", "verify_policy_coverage", "contact_claimant"}
	default:
		if flagged {
			return []string{"verify_documents", "process_claim"}
		}
		return []string{"approve_claim", "schedule_assessment"}
	}
}
