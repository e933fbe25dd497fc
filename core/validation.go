// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateUserPreference validates a UserPreference according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//
// NOT validated (absent values are legal and merely reduce signal):
//   - Budget, Bedrooms, Bathrooms, LivingArea
//   - Description (a record with no free text still matches on structure)
func ValidateUserPreference(user *UserPreference) error {
	if user == nil {
		return fmt.Errorf("%w: user is nil", ErrInvalidUserPreference)
	}

	if user.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidUserPreference, ErrMissingUserID)
	}

	return nil
}

// ValidatePropertyListing validates a PropertyListing according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//
// NOT validated (absent values are legal and merely reduce signal):
//   - Price, Bedrooms, Bathrooms, LivingArea
//   - Description
func ValidatePropertyListing(property *PropertyListing) error {
	if property == nil {
		return fmt.Errorf("%w: property is nil", ErrInvalidPropertyListing)
	}

	if property.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPropertyListing, ErrMissingPropertyID)
	}

	return nil
}
