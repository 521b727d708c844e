// Package cache stores rendered artifacts keyed by content.
//
// Rendering a skill tree through Graphviz or the SVG scene writer is the
// slowest step of the CLI and the share viewer. Both look up results here
// first:
//
//   - [FileCache] persists entries under the user cache directory for the CLI
//   - [MemoryCache] keeps entries in process for the share viewer
//   - [NullCache] disables caching (--no-cache, tests)
//
// Keys are built with [Key], which hashes its parts so that any change to
// the input (DOT source, tree content, options) produces a new key.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache is a byte store with optional expiry. A ttl of 0 never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key returns prefix + ":" + the SHA-256 of parts encoded as JSON.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash computes a SHA-256 hash of data as 64 hex characters.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
