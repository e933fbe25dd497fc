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

import "errors"

// Domain validation errors
var (
	// ErrInvalidUserPreference indicates a UserPreference failed validation.
	ErrInvalidUserPreference = errors.New("invalid user preference")

	// ErrInvalidPropertyListing indicates a PropertyListing failed validation.
	ErrInvalidPropertyListing = errors.New("invalid property listing")

	// ErrMissingUserID indicates the user identity field is empty.
	ErrMissingUserID = errors.New("user id cannot be empty")

	// ErrMissingPropertyID indicates the property identity field is empty.
	ErrMissingPropertyID = errors.New("property id cannot be empty")
)
