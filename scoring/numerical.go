package scoring

import "github.com/poiesic/homematch/core"

// NumericalScorer computes the structured-attribute compatibility between a
// user and a property. It is a pure function of its inputs and safe for
// concurrent use.
type NumericalScorer struct {
	config Config
}

// NewNumericalScorer creates a scorer with the given configuration.
func NewNumericalScorer(config Config) *NumericalScorer {
	return &NumericalScorer{config: config}
}

// Score returns the numerical similarity for a pair on a 0..100 scale,
// rounded to 2 decimals. The boolean reports whether any structured
// attribute was comparable at all; when it is false the pair has no
// numerical signal, which callers must not conflate with a score of zero.
//
// Features compared:
//   - Budget vs Price (tolerance band, budget is the target)
//   - Bedrooms (exact or flexible)
//   - Bathrooms (exact or flexible)
//   - Living area (tolerance band, user preference is the target)
//
// Each defined feature contributes equally to the mean; an absent feature
// is excluded rather than penalized. The free-text description never
// participates here.
func (s *NumericalScorer) Score(user *core.UserPreference, property *core.PropertyListing) (float64, bool) {
	var scores []float64

	if v, ok := toleranceScore(user.Budget, property.Price, s.config.BudgetTolerance); ok {
		scores = append(scores, v)
	}
	if v, ok := flexScore(user.Bedrooms, property.Bedrooms, s.config.BedroomFlex); ok {
		scores = append(scores, v)
	}
	if v, ok := flexScore(user.Bathrooms, property.Bathrooms, s.config.BathroomFlex); ok {
		scores = append(scores, v)
	}
	if v, ok := toleranceScore(user.LivingArea, property.LivingArea, s.config.LivingAreaTolerance); ok {
		scores = append(scores, v)
	}

	if len(scores) == 0 {
		return 0, false
	}

	var sum float64
	for _, v := range scores {
		sum += v
	}
	return round2(sum / float64(len(scores)) * 100), true
}
