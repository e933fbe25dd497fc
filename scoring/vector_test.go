package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.5, 0.5, 0.1}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-6)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		a := []float32{1, 0, 0}
		b := []float32{0, 1, 0}
		assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-6)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{-1, 0}
		assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-6)
	})

	t.Run("zero vector has no direction", func(t *testing.T) {
		a := []float32{0, 0, 0}
		b := []float32{1, 2, 3}
		assert.Equal(t, 0.0, CosineSimilarity(a, b))
	})

	t.Run("empty vectors", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	})

	t.Run("scale invariance", func(t *testing.T) {
		a := []float32{1, 2, 3}
		b := []float32{2, 4, 6}
		assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-6)
	})
}

func TestSemanticScore(t *testing.T) {
	t.Run("identical vectors scale to 100", func(t *testing.T) {
		v := []float32{0.3, 0.4, 0.5}
		assert.Equal(t, 100.0, SemanticScore(v, v))
	})

	t.Run("rounding to two decimals", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{1, 1}
		// cosine = 1/sqrt(2) = 0.70710..., scaled and rounded to 70.71
		assert.Equal(t, 70.71, SemanticScore(a, b))
	})
}
