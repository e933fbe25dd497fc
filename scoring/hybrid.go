package scoring

// HybridScorer blends the semantic and numerical signals into the final
// match score. Like NumericalScorer it is pure and safe for concurrent use.
type HybridScorer struct {
	config Config
}

// NewHybridScorer creates a scorer with the given configuration.
func NewHybridScorer(config Config) *HybridScorer {
	return &HybridScorer{config: config}
}

// Score combines a semantic similarity (0..100) with a numerical similarity
// (0..100, possibly absent) into a match score in [0, 100], rounded to 2
// decimals.
//
// When the numerical signal is absent the semantic score passes through
// unchanged: missing structured data degrades the signal, it does not
// penalize the pair. The same fallback applies when the configured weights
// sum to zero or less, so the result is always defined and finite.
func (s *HybridScorer) Score(semantic float64, numerical float64, numericalDefined bool) float64 {
	if !numericalDefined {
		return semantic
	}

	weightSum := s.config.SemanticWeight + s.config.NumericalWeight
	if weightSum <= 0 {
		return semantic
	}

	blended := (semantic*s.config.SemanticWeight + numerical*s.config.NumericalWeight) / weightSum
	return round2(blended)
}
