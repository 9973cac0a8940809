package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ListingKey generates the cache key for an installed-package listing.
// Keys are namespaced per ecosystem so clearing one does not evict the other.
func ListingKey(ecosystem string) string {
	return "listing:" + ecosystem
}
