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


// Package storage provides the storage abstraction layer for homematch.
//
// This package defines repository interfaces that decouple storage
// implementation from the matching logic. Stored user preferences and
// property listings back the import/rank workflow, and the embedding
// repository is a persistent cache that lets repeated runs skip
// recomputing embeddings for unchanged rows.
//
// All public constructors in implementation packages return interface
// types to enforce abstraction:
//
//	repo, err := badger.NewUserRepository(backend)  // returns storage.UserRepository
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context. Pass context.Background()
// for operations without specific timeout requirements.
package storage
