package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Historical claims use content-based hashing so that identical
// transcripts produce identical IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Label is the adjudication outcome assigned to a claim.
type Label string

const (
	// LabelValid marks a claim as complete and plausible.
	LabelValid Label = "valid"
	// LabelInvalid marks a claim as incomplete or implausible.
	LabelInvalid Label = "invalid"
	// LabelFraudulent marks a claim as carrying fraud indicators.
	LabelFraudulent Label = "fraudulent"
)

// PreviewLength is the number of leading transcript characters kept as a
// short preview in index metadata and similarity matches.
const PreviewLength = 120

// PreviewText returns the leading PreviewLength characters of text.
func PreviewText(text string) string {
	return TruncateText(text, PreviewLength)
}

// TruncateText returns at most limit runes of text.
// Truncation is rune-aware so it never splits a multi-byte character.
func TruncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// ExtractedClaim holds the structured fields pulled from a claim narrative.
// IncidentDescription is always populated; every other field is optional
// and left empty (or nil) when the narrative does not state it.
// JSON tags match the intake schema stored by the persistence layer.
type ExtractedClaim struct {
	ClaimantName        string   `json:"claimant_name,omitempty"`
	ContactPhone        string   `json:"contact_phone,omitempty"`
	PolicyNumber        string   `json:"policy_number,omitempty"`
	IncidentDatetime    string   `json:"incident_datetime,omitempty"`
	IncidentLocation    string   `json:"incident_location,omitempty"`
	IncidentDescription string   `json:"incident_description"`
	ClaimedAmount       *float64 `json:"claimed_amount,omitempty"`

	// DetectedEntities lists the field names that resolved to a value,
	// in schema order.
	DetectedEntities []string `json:"detected_entities"`
}

// ClassificationResult is the outcome of scoring an extracted claim.
type ClassificationResult struct {
	Label              Label    `json:"label"`
	Score              float64  `json:"score"`
	Rationale          string   `json:"rationale"`
	PolicyFlags        []string `json:"policy_flags"`
	SuggestedNextSteps []string `json:"suggested_next_steps"`
}

// ClaimRecord is a historical claim kept in the corpus store.
// The corpus feeds similarity index builds.
type ClaimRecord struct {
	Id         ID
	Label      Label
	Transcript string
	Preview    string
	InsertedAt time.Time // When the record was inserted into the store
	UpdatedAt  time.Time // When the record was last updated
}

// IndexEntry is the metadata persisted alongside each index vector.
// Entries and vectors are paired 1:1 by position.
type IndexEntry struct {
	ClaimId ID
	Label   Label
	Preview string
}

// SimilarityMatch is one nearest-neighbor result from the index.
type SimilarityMatch struct {
	ClaimId    ID      `json:"id"`
	Label      Label   `json:"label"`
	Preview    string  `json:"preview"`
	Similarity float32 `json:"similarity"`
}

// ClaimAnalysis is the composite result of one pipeline invocation.
// It is handed to the persistence layer verbatim.
type ClaimAnalysis struct {
	Extracted      *ExtractedClaim       `json:"extracted"`
	Classification *ClassificationResult `json:"classification"`
	Similar        []SimilarityMatch     `json:"similar"`
}
