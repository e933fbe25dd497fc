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

// UserRepository implements storage.UserRepository using BadgerDB.
type UserRepository struct {
	backend *Backend
}

var _ storage.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new BadgerDB-backed user repository.
func NewUserRepository(backend *Backend) (storage.UserRepository, error) {
	return &UserRepository{backend: backend}, nil
}

// AddUsers adds user preferences to storage. Existing identities are
// overwritten with their original InsertedAt preserved.
func (r *UserRepository) AddUsers(ctx context.Context, users ...*core.UserPreference) ([]*core.UserPreference, error) {
	for _, user := range users {
		if err := core.ValidateUserPreference(user); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, user := range users {
			key := makeUserKey(user.Id)

			user.UpdatedAt = now
			user.InsertedAt = now
			existing, err := readUser(tx, key)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return err
			}
			if existing != nil {
				user.InsertedAt = existing.InsertedAt
			}

			if err := tx.Set(key, storage.MarshalUserPreference(user)); err != nil {
				return fmt.Errorf("failed to store user %s: %w", user.Id, err)
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser retrieves a user preference by identity.
func (r *UserRepository) GetUser(ctx context.Context, id string) (*core.UserPreference, error) {
	var user *core.UserPreference

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		user, err = readUser(tx, makeUserKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers retrieves all stored user preferences, ordered by identity.
func (r *UserRepository) ListUsers(ctx context.Context) ([]*core.UserPreference, error) {
	var users []*core.UserPreference

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(userRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				user, err := storage.UnmarshalUserPreference(val)
				if err != nil {
					return err
				}
				users = append(users, user)
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

	return users, nil
}

// DeleteUsers removes user preferences by their identities.
func (r *UserRepository) DeleteUsers(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeUserKey(id)
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return fmt.Errorf("failed to delete user %s: %w", id, err)
			}
		}
		return tx.Commit()
	}, true)
}

// WithTransaction executes a function within a transaction.
func (r *UserRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// Close closes the underlying storage backend.
func (r *UserRepository) Close() error {
	return r.backend.Close()
}

// readUser reads and deserializes a user record within a transaction.
// Returns storage.ErrNotFound if the key doesn't exist.
func readUser(tx *badger.Txn, key []byte) (*core.UserPreference, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var user *core.UserPreference
	err = item.Value(func(val []byte) error {
		var err error
		user, err = storage.UnmarshalUserPreference(val)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
