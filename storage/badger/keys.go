package badger

import (
	"fmt"

	"github.com/poiesic/homematch/core"
)

// Key prefixes for different data types
const (
	userRecordPrefix     = "usrrec"
	propertyRecordPrefix = "proprec"
	embeddingPrefix      = "embrec"
)

// makeUserKey generates a key for a user preference by external identity.
func makeUserKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", userRecordPrefix, id))
}

// makePropertyKey generates a key for a property listing by external identity.
func makePropertyKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", propertyRecordPrefix, id))
}

// makeEmbeddingKey generates a key for a cached embedding by content hash.
func makeEmbeddingKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", embeddingPrefix, id))
}
