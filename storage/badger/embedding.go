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

// EmbeddingRepository implements storage.EmbeddingRepository using BadgerDB.
type EmbeddingRepository struct {
	backend *Backend
}

var _ storage.EmbeddingRepository = (*EmbeddingRepository)(nil)

// NewEmbeddingRepository creates a new BadgerDB-backed embedding cache.
func NewEmbeddingRepository(backend *Backend) (storage.EmbeddingRepository, error) {
	return &EmbeddingRepository{backend: backend}, nil
}

// GetEmbedding returns the cached vector for the given content ID.
// A cache miss is reported as (nil, nil).
func (r *EmbeddingRepository) GetEmbedding(ctx context.Context, id core.ID) ([]float32, error) {
	var vector []float32

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			embedding, err := storage.UnmarshalEmbedding(val)
			if err != nil {
				return err
			}
			vector = embedding.Vector
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return vector, nil
}

// PutEmbedding stores a vector under the given content ID, overwriting
// any previous entry.
func (r *EmbeddingRepository) PutEmbedding(ctx context.Context, id core.ID, vector []float32) error {
	embedding := &core.Embedding{
		Id:         id,
		Vector:     vector,
		InsertedAt: time.Now(),
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeEmbeddingKey(id), storage.MarshalEmbedding(embedding)); err != nil {
			return fmt.Errorf("failed to store embedding %d: %w", id, err)
		}
		return tx.Commit()
	}, true)
}

// WithTransaction executes a function within a transaction.
func (r *EmbeddingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// Close closes the underlying storage backend.
func (r *EmbeddingRepository) Close() error {
	return r.backend.Close()
}
