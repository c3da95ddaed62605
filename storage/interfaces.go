package storage

import (
	"context"

	"github.com/avallon/claimlens/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ClaimRepository provides operations over the historical claim corpus.
// The corpus is the source material for similarity index builds.
type ClaimRepository interface {
	Repository

	// AddClaims adds one or more claim records to storage.
	// For records with Id=0, derives a content-based ID from the transcript.
	// Fills Preview from the transcript if empty and sets InsertedAt if
	// not already set.
	// Returns the records with IDs and timestamps populated.
	AddClaims(ctx context.Context, records ...*core.ClaimRecord) ([]*core.ClaimRecord, error)

	// UpdateClaims updates existing claim records.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateClaims(ctx context.Context, records ...*core.ClaimRecord) ([]*core.ClaimRecord, error)

	// DeleteClaims removes claim records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteClaims(ctx context.Context, ids ...core.ID) error

	// GetClaim retrieves a single claim record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetClaim(ctx context.Context, id core.ID) (*core.ClaimRecord, error)

	// GetClaims retrieves multiple claim records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetClaims(ctx context.Context, ids ...core.ID) ([]*core.ClaimRecord, error)

	// AllClaims retrieves every claim record in the corpus, ordered by ID.
	// Index builds iterate the result, so ordering must be deterministic.
	AllClaims(ctx context.Context) ([]*core.ClaimRecord, error)

	// CountClaims returns the number of records in the corpus.
	CountClaims(ctx context.Context) (int, error)
}
