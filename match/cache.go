package match

import (
	"context"

	"github.com/poiesic/homematch/core"
)

// VectorCache persists embeddings across runs, keyed by the content hash of
// the rendered text. A cache is a transparent optimization: ranking results
// are identical with or without one.
type VectorCache interface {
	// GetEmbedding returns the cached vector for the given content ID,
	// or (nil, nil) when the ID is not cached.
	GetEmbedding(ctx context.Context, id core.ID) ([]float32, error)

	// PutEmbedding stores a vector under the given content ID.
	PutEmbedding(ctx context.Context, id core.ID, vector []float32) error
}
