package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/homematch/core"
	"github.com/poiesic/homematch/storage"
)

// PropertyRepository implements storage.PropertyRepository using BadgerDB.
type PropertyRepository struct {
	backend *Backend
}

var _ storage.PropertyRepository = (*PropertyRepository)(nil)

// NewPropertyRepository creates a new BadgerDB-backed property repository.
func NewPropertyRepository(backend *Backend) (storage.PropertyRepository, error) {
	return &PropertyRepository{backend: backend}, nil
}

// AddProperties adds property listings to storage. Existing identities are
// overwritten with their original InsertedAt preserved.
func (r *PropertyRepository) AddProperties(ctx context.Context, properties ...*core.PropertyListing) ([]*core.PropertyListing, error) {
	for _, property := range properties {
		if err := core.ValidatePropertyListing(property); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, property := range properties {
			key := makePropertyKey(property.Id)

			property.UpdatedAt = now
			property.InsertedAt = now
			existing, err := readProperty(tx, key)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return err
			}
			if existing != nil {
				property.InsertedAt = existing.InsertedAt
			}

			if err := tx.Set(key, storage.MarshalPropertyListing(property)); err != nil {
				return fmt.Errorf("failed to store property %s: %w", property.Id, err)
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return properties, nil
}

// GetProperty retrieves a property listing by identity.
func (r *PropertyRepository) GetProperty(ctx context.Context, id string) (*core.PropertyListing, error) {
	var property *core.PropertyListing

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		property, err = readProperty(tx, makePropertyKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}

	return property, nil
}

// ListProperties retrieves all stored property listings, ordered by identity.
func (r *PropertyRepository) ListProperties(ctx context.Context) ([]*core.PropertyListing, error) {
	var properties []*core.PropertyListing

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(propertyRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				property, err := storage.UnmarshalPropertyListing(val)
				if err != nil {
					return err
				}
				properties = append(properties, property)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return properties, nil
}

// DeleteProperties removes property listings by their identities.
func (r *PropertyRepository) DeleteProperties(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makePropertyKey(id)
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("property %s: %w", id, storage.ErrNotFound)
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return fmt.Errorf("failed to delete property %s: %w", id, err)
			}
		}
		return tx.Commit()
	}, true)
}

// WithTransaction executes a function within a transaction.
func (r *PropertyRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// Close closes the underlying storage backend.
func (r *PropertyRepository) Close() error {
	return r.backend.Close()
}

// readProperty reads and deserializes a property record within a transaction.
// Returns storage.ErrNotFound if the key doesn't exist.
func readProperty(tx *badger.Txn, key []byte) (*core.PropertyListing, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var property *core.PropertyListing
	err = item.Value(func(val []byte) error {
		var err error
		property, err = storage.UnmarshalPropertyListing(val)
		return err
	})
	if err != nil {
		return nil, err
	}

	return property, nil
}
