package match

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrEmbeddingMismatch is returned when the embedding provider returns
	// a different number of vectors than texts requested.
	ErrEmbeddingMismatch = errors.New("embedding count mismatch")
)
