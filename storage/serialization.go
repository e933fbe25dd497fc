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


package storage

import (
	"github.com/poiesic/homematch/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalUserPreference serializes a UserPreference to bytes.
func MarshalUserPreference(user *core.UserPreference) []byte {
	buf := make([]byte, core.UserPreferenceMUS.Size(*user))
	core.UserPreferenceMUS.Marshal(*user, buf)
	return buf
}

// UnmarshalUserPreference deserializes a UserPreference from bytes.
func UnmarshalUserPreference(data []byte) (*core.UserPreference, error) {
	user, _, err := core.UserPreferenceMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MarshalPropertyListing serializes a PropertyListing to bytes.
func MarshalPropertyListing(property *core.PropertyListing) []byte {
	buf := make([]byte, core.PropertyListingMUS.Size(*property))
	core.PropertyListingMUS.Marshal(*property, buf)
	return buf
}

// UnmarshalPropertyListing deserializes a PropertyListing from bytes.
func UnmarshalPropertyListing(data []byte) (*core.PropertyListing, error) {
	property, _, err := core.PropertyListingMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// MarshalEmbedding serializes an Embedding to bytes.
func MarshalEmbedding(embedding *core.Embedding) []byte {
	buf := make([]byte, core.EmbeddingMUS.Size(*embedding))
	core.EmbeddingMUS.Marshal(*embedding, buf)
	return buf
}

// UnmarshalEmbedding deserializes an Embedding from bytes.
func UnmarshalEmbedding(data []byte) (*core.Embedding, error) {
	embedding, _, err := core.EmbeddingMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &embedding, nil
}
