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


package scoring

import "errors"

// Config holds the tunable scoring parameters.
// It is an immutable value passed to scorers and the match engine at
// construction time.
type Config struct {
	// SemanticWeight is the relative weight of the semantic signal.
	SemanticWeight float64

	// NumericalWeight is the relative weight of the numerical signal.
	// Weights need not sum to 1; only their ratio matters.
	NumericalWeight float64

	// BudgetTolerance is the fractional band around the user's budget
	// within which a price mismatch is linearly penalized.
	BudgetTolerance float64

	// BedroomFlex is the bedroom count difference that still earns
	// partial credit.
	BedroomFlex int

	// BathroomFlex is the bathroom count difference that still earns
	// partial credit.
	BathroomFlex int

	// LivingAreaTolerance is the fractional band around the user's
	// desired living area.
	LivingAreaTolerance float64

	// TopK is the number of highest-scoring properties kept per user.
	TopK int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithWeights sets the semantic and numerical blend weights.
func WithWeights(semantic, numerical float64) ConfigOption {
	return func(c *Config) {
		c.SemanticWeight = semantic
		c.NumericalWeight = numerical
	}
}

// WithBudgetTolerance sets the budget tolerance fraction.
func WithBudgetTolerance(tolerance float64) ConfigOption {
	return func(c *Config) {
		c.BudgetTolerance = tolerance
	}
}

// WithBedroomFlex sets the bedroom flexibility step count.
func WithBedroomFlex(flex int) ConfigOption {
	return func(c *Config) {
		c.BedroomFlex = flex
	}
}

// WithBathroomFlex sets the bathroom flexibility step count.
func WithBathroomFlex(flex int) ConfigOption {
	return func(c *Config) {
		c.BathroomFlex = flex
	}
}

// WithLivingAreaTolerance sets the living area tolerance fraction.
func WithLivingAreaTolerance(tolerance float64) ConfigOption {
	return func(c *Config) {
		c.LivingAreaTolerance = tolerance
	}
}

// WithTopK sets the number of properties kept per user.
func WithTopK(k int) ConfigOption {
	return func(c *Config) {
		c.TopK = k
	}
}

// DefaultConfig returns the canonical scoring parameters.
func DefaultConfig() Config {
	return Config{
		SemanticWeight:      0.7,
		NumericalWeight:     0.3,
		BudgetTolerance:     0.20,
		BedroomFlex:         1,
		BathroomFlex:        1,
		LivingAreaTolerance: 0.15,
		TopK:                5,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...ConfigOption) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
// Degenerate weights are deliberately NOT rejected here; the hybrid scorer
// falls back to semantic-only for them.
func (c Config) Validate() error {
	if c.TopK < 1 {
		return errors.New("scoring config: TopK must be positive")
	}
	return nil
}
