package scoring

import "math"

// CosineSimilarity computes the cosine similarity between two vectors.
// A zero or empty vector has no direction and yields 0. Vectors of
// different lengths are compared over their common prefix.
func CosineSimilarity(a, b []float32) float64 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SemanticScore scales a cosine similarity to the 0..100 match scale,
// rounded to 2 decimals.
func SemanticScore(userVector, propertyVector []float32) float64 {
	return round2(CosineSimilarity(userVector, propertyVector) * 100)
}
