package match

import (
	"fmt"

	"github.com/poiesic/homematch/core"
)

// UserText renders a user preference as the sentence fed to the embedder.
func UserText(user *core.UserPreference) string {
	return fmt.Sprintf(
		"User is looking for a home with a budget of %s dollars, %s bedrooms and %s bathrooms. Preferences: %s",
		user.Budget, user.Bedrooms, user.Bathrooms, user.Description,
	)
}

// PropertyText renders a property listing as the sentence fed to the embedder.
func PropertyText(property *core.PropertyListing) string {
	return fmt.Sprintf(
		"This property is priced at %s dollars, has %s bedrooms and %s bathrooms, with a living area of %s square feet. Property description: %s",
		property.Price, property.Bedrooms, property.Bathrooms, property.LivingArea, property.Description,
	)
}

// QualityLabel buckets a match score for display.
func QualityLabel(score float64) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "fair"
	default:
		return "poor"
	}
}
