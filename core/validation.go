// Copyright 2025 Avallon Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"strings"
)

// MaxNarrativeLength bounds the accepted narrative size in characters.
const MaxNarrativeLength = 10000

// ValidateNarrative validates a claim narrative supplied by a caller.
//
// Validation rules:
//   - must contain at least one non-whitespace character
//   - must not exceed MaxNarrativeLength characters
//
// Violations wrap ErrInvalidQuery so callers can report them as
// precondition failures.
func ValidateNarrative(narrative string) error {
	if strings.TrimSpace(narrative) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrEmptyNarrative)
	}
	if len([]rune(narrative)) > MaxNarrativeLength {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrNarrativeTooLong)
	}
	return nil
}

// ValidateLabel checks that a Label has a known value.
func ValidateLabel(label Label) error {
	switch label {
	case LabelValid, LabelInvalid, LabelFraudulent:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidLabel, label)
}

// ValidateClaimRecord validates a ClaimRecord according to domain rules.
//
// Validation rules:
//   - Transcript must not be empty
//   - Label must be a known value
//
// NOT validated (populated by the store):
//   - ID (0 means derive from content)
//   - Preview (derived from the transcript when empty)
func ValidateClaimRecord(record *ClaimRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidClaimRecord)
	}
	if record.Transcript == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClaimRecord, ErrEmptyTranscript)
	}
	if err := ValidateLabel(record.Label); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClaimRecord, err)
	}
	return nil
}
