package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier derived from content.
// It is used for embedding cache keys and stored record lookups.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// UserPreference describes what a buyer is looking for.
// Numeric attributes are optional; an absent attribute is excluded from
// numerical scoring rather than treated as an error.
type UserPreference struct {
	Id          string
	Budget      Optional
	Bedrooms    Optional
	Bathrooms   Optional
	LivingArea  Optional // square feet
	Description string
	InsertedAt  time.Time // When the record was inserted into the database
	UpdatedAt   time.Time // When the record was last updated
}

// PropertyListing describes a property on the market.
// It follows the same optional-attribute policy as UserPreference.
type PropertyListing struct {
	Id          string
	Price       Optional
	Bedrooms    Optional
	Bathrooms   Optional
	LivingArea  Optional // square feet
	Description string
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// MatchRecord is one scored user-property pair.
type MatchRecord struct {
	UserId     string
	PropertyId string
	MatchScore float64 // 0..100
}

// Embedding is a cached text embedding keyed by content hash.
type Embedding struct {
	Id         ID
	Vector     []float32
	InsertedAt time.Time
}
