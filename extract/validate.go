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


package extract

import (
	"strconv"
	"strings"
)

// maxFieldLength bounds short free-text fields (name, date, location,
// policy number, phone). Longer answers are treated as model rambling
// and rejected.
const maxFieldLength = 50

// minDescriptionLength is the minimum accepted summary length. Anything
// at or below it falls back to the truncated narrative.
const minDescriptionLength = 10

// descriptionFallbackLength is how much of the narrative the description
// falls back to when no usable summary is generated.
const descriptionFallbackLength = 200

// validateShortText accepts a short free-text answer: non-empty, not the
// literal "none" (any case), and at most maxFieldLength characters.
func validateShortText(answer, _ string) (string, bool) {
	if answer == "" || strings.EqualFold(answer, "none") {
		return "", false
	}
	if len([]rune(answer)) > maxFieldLength {
		return "", false
	}
	return answer, true
}

// validatePhone applies the short-text rules plus the anti-hallucination
// guard: after stripping spaces and hyphens, the answer must appear as a
// substring of the similarly-normalized narrative. A phone number not
// traceable to the source text is never reported.
func validatePhone(answer, narrative string) (string, bool) {
	answer, ok := validateShortText(answer, narrative)
	if !ok {
		return "", false
	}
	if !strings.Contains(normalizePhone(narrative), normalizePhone(answer)) {
		return "", false
	}
	return answer, true
}

func normalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}

// validateAmount strips the answer to digits and decimal separators,
// removes comma thousands-separators, and parses it as a non-negative
// decimal. Unparsable text yields a rejection, never a fabricated number.
// Returns the canonical numeric string.
func validateAmount(answer, _ string) (string, bool) {
	if answer == "" || strings.EqualFold(answer, "none") {
		return "", false
	}

	cleaned := strings.ReplaceAll(answer, ",", "")
	cleaned = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, cleaned)

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount < 0 {
		return "", false
	}
	return strconv.FormatFloat(amount, 'f', -1, 64), true
}

// validateDescription accepts a generated summary longer than
// minDescriptionLength characters.
func validateDescription(answer, _ string) (string, bool) {
	if strings.EqualFold(answer, "none") {
		return "", false
	}
	if len([]rune(answer)) <= minDescriptionLength {
		return "", false
	}
	return answer, true
}
