package storage

import (
	"context"

	"github.com/poiesic/homematch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// UserRepository provides operations for managing stored user preferences.
type UserRepository interface {
	Repository
	// AddUsers adds one or more user preferences to storage.
	// Records are validated and stored under their external identity;
	// adding an existing identity overwrites the stored record.
	// Returns the records with timestamps populated.
	AddUsers(ctx context.Context, users ...*core.UserPreference) ([]*core.UserPreference, error)

	// GetUser retrieves a single user preference by identity.
	// Returns ErrNotFound if the record doesn't exist.
	GetUser(ctx context.Context, id string) (*core.UserPreference, error)

	// ListUsers retrieves all stored user preferences, ordered by identity.
	ListUsers(ctx context.Context) ([]*core.UserPreference, error)

	// DeleteUsers removes user preferences by their identities.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteUsers(ctx context.Context, ids ...string) error
}

// PropertyRepository provides operations for managing stored property listings.
type PropertyRepository interface {
	Repository
	// AddProperties adds one or more property listings to storage.
	// Records are validated and stored under their external identity;
	// adding an existing identity overwrites the stored record.
	// Returns the records with timestamps populated.
	AddProperties(ctx context.Context, properties ...*core.PropertyListing) ([]*core.PropertyListing, error)

	// GetProperty retrieves a single property listing by identity.
	// Returns ErrNotFound if the record doesn't exist.
	GetProperty(ctx context.Context, id string) (*core.PropertyListing, error)

	// ListProperties retrieves all stored property listings, ordered by identity.
	ListProperties(ctx context.Context) ([]*core.PropertyListing, error)

	// DeleteProperties removes property listings by their identities.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteProperties(ctx context.Context, ids ...string) error
}

// EmbeddingRepository caches text embeddings keyed by content hash.
// It satisfies the match engine's vector cache contract: a miss is
// reported as (nil, nil), not as an error.
type EmbeddingRepository interface {
	Repository
	// GetEmbedding returns the cached vector for the given content ID,
	// or (nil, nil) when the ID is not cached.
	GetEmbedding(ctx context.Context, id core.ID) ([]float32, error)

	// PutEmbedding stores a vector under the given content ID,
	// overwriting any previous entry.
	PutEmbedding(ctx context.Context, id core.ID, vector []float32) error
}
