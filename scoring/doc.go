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


// Package scoring implements the hybrid similarity model.
//
// Two signals are computed per user-property pair:
//
//   - Numerical similarity: structured attributes (budget vs price,
//     bedroom and bathroom counts, living area) compared under per-feature
//     tolerance or flexibility rules, averaged and scaled to 0..100. A pair
//     with no comparable attributes has no numerical signal at all, which
//     is a distinct state from a score of zero.
//   - Semantic similarity: cosine similarity of text embeddings scaled to
//     0..100. The embeddings themselves come from the ai package; this
//     package only does the vector arithmetic.
//
// The hybrid score blends the two with configurable weights, degrading to
// semantic-only when the numerical signal is absent or the weights are
// degenerate. All scorers here are pure functions of their inputs.
package scoring
