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

import "errors"

// Domain error taxonomy. Components wrap these sentinels so callers can
// distinguish failure kinds without coupling to transport details.
var (
	// ErrModelUnavailable indicates the embedding or generation backend
	// cannot be reached or loaded. Always recoverable via fallback.
	ErrModelUnavailable = errors.New("model backend unavailable")

	// ErrMalformedOutput indicates the model responded but its output
	// failed parsing or validation.
	ErrMalformedOutput = errors.New("malformed model output")

	// ErrIndexCorrupt indicates the on-disk index/metadata pair is
	// inconsistent and must be rebuilt rather than used partially.
	ErrIndexCorrupt = errors.New("similarity index corrupt")

	// ErrInvalidQuery indicates a caller-contract violation (k < 1 or
	// an empty narrative). Reported synchronously, never coerced.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEmptyNarrative indicates the narrative text is empty.
	ErrEmptyNarrative = errors.New("narrative cannot be empty")

	// ErrNarrativeTooLong indicates the narrative exceeds MaxNarrativeLength.
	ErrNarrativeTooLong = errors.New("narrative exceeds maximum length")

	// ErrInvalidClaimRecord indicates a ClaimRecord failed validation.
	ErrInvalidClaimRecord = errors.New("invalid claim record")

	// ErrEmptyTranscript indicates the Transcript field is empty.
	ErrEmptyTranscript = errors.New("transcript cannot be empty")

	// ErrInvalidLabel indicates an unknown Label value.
	ErrInvalidLabel = errors.New("invalid label")
)
