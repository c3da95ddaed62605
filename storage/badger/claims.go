package badger

import (
	"context"
	"slices"
	"time"

	"github.com/avallon/claimlens/core"
	"github.com/avallon/claimlens/storage"
	"github.com/dgraph-io/badger/v4"
)

// ClaimRepository implements storage.ClaimRepository for BadgerDB.
type ClaimRepository struct {
	backend *Backend
}

var _ storage.ClaimRepository = (*ClaimRepository)(nil)

// NewClaimRepository creates a new ClaimRepository.
func NewClaimRepository(backend *Backend) (*ClaimRepository, error) {
	return &ClaimRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is owned by the
// caller and closed separately.
func (r *ClaimRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ClaimRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddClaims adds one or more claim records to storage.
// IDs are content-based: a record with Id=0 gets IDFromContent of its
// transcript, so adding the same transcript twice overwrites in place
// instead of duplicating.
func (r *ClaimRepository) AddClaims(ctx context.Context, records ...*core.ClaimRecord) ([]*core.ClaimRecord, error) {
	for _, record := range records {
		if err := core.ValidateClaimRecord(record); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if record.Id == 0 {
				record.Id = core.IDFromContent(record.Transcript)
			}
			if record.Preview == "" {
				record.Preview = core.PreviewText(record.Transcript)
			}
			if record.InsertedAt.IsZero() {
				record.InsertedAt = time.Now().UTC()
			}
			record.UpdatedAt = record.InsertedAt

			key := makeClaimRecordKey(record.Id)
			value := storage.MarshalClaimRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateClaims updates existing claim records.
func (r *ClaimRepository) UpdateClaims(ctx context.Context, records ...*core.ClaimRecord) ([]*core.ClaimRecord, error) {
	for _, record := range records {
		if err := core.ValidateClaimRecord(record); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeClaimRecordKey(record.Id)

			old, err := r.readClaimRecord(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			record.InsertedAt = old.InsertedAt
			record.UpdatedAt = time.Now().UTC()

			value := storage.MarshalClaimRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// DeleteClaims removes claim records by their IDs.
func (r *ClaimRepository) DeleteClaims(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeClaimRecordKey(id)

			record, err := r.readClaimRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetClaim retrieves a single claim record by ID.
func (r *ClaimRepository) GetClaim(ctx context.Context, id core.ID) (*core.ClaimRecord, error) {
	var result *core.ClaimRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeClaimRecordKey(id)
		var err error
		result, err = r.readClaimRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetClaims retrieves multiple claim records by their IDs.
func (r *ClaimRepository) GetClaims(ctx context.Context, ids ...core.ID) ([]*core.ClaimRecord, error) {
	var result []*core.ClaimRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeClaimRecordKey(id)
			record, err := r.readClaimRecord(tx, key)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// AllClaims retrieves every claim record, ordered by ID.
// Content-based IDs carry no insertion order, but the ordering is
// deterministic across calls, which is what index builds need.
func (r *ClaimRepository) AllClaims(ctx context.Context) ([]*core.ClaimRecord, error) {
	var result []*core.ClaimRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(claimRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.ClaimRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalClaimRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Keys sort as decimal strings, so re-sort numerically.
	slices.SortFunc(result, func(a, b *core.ClaimRecord) int {
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})
	return result, nil
}

// CountClaims returns the number of records in the corpus.
func (r *ClaimRepository) CountClaims(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(claimRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readClaimRecord reads a claim record by key within a transaction.
// Returns nil (not an error) if the key doesn't exist.
func (r *ClaimRepository) readClaimRecord(tx *badger.Txn, key []byte) (*core.ClaimRecord, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record *core.ClaimRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalClaimRecord(val)
		return err
	})
	return record, err
}
