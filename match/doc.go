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


// Package match orchestrates hybrid scoring across all user-property pairs.
//
// The Engine renders each row as a sentence, embeds every distinct row
// exactly once (an O(U+P) cost against the O(U*P) pairwise scoring loop),
// scores the full cross product, and keeps the top-K properties per user.
//
// Scoring may be sharded across an ants worker pool; the output is
// identical regardless of the pool size because each worker owns one
// user's slice of the result.
package match
