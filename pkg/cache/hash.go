package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the SHA-256 of data as a 64-character hex string. Pipeline
// stages use it to fingerprint DOT source and positioned layouts.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a namespaced cache key: prefix + ":" + SHA-256 over the
// JSON encoding of parts. Full-length hashes keep distinct inputs from
// colliding.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
