package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey builds the cache key for a rendered artifact. The payload is
// the raw input JSON; profile and format are part of the key because the
// same input renders differently under each.
func ArtifactKey(payload []byte, profileName, format string) string {
	return fmt.Sprintf("artifact:%s:%s:%s", profileName, format, Hash(payload))
}
