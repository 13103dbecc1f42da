// Package cache stores rendered identicons keyed by digest and render options.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [MemoryCache]: bounded LRU with per-entry expiry, for the HTTP server
//   - [RedisCache]: shared cache for several server processes
//   - [NullCache]: caching disabled
//
// All backends implement [Cache] and are safe for concurrent use.
//
// # Keys
//
// A [Keyer] builds cache keys. [DefaultKeyer] hashes the digest together with
// every option that changes the output bytes, so a different size or filter
// never returns a stale image. [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// TTLAvatar is the default lifetime of a cached identicon. Identicons are a
// pure function of their key, so entries only expire to bound disk usage.
const TTLAvatar = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// AvatarKeyOpts holds the render options that affect an identicon's bytes.
type AvatarKeyOpts struct {
	Size      int    `json:"size"`
	Filter    string `json:"filter"`
	Scaler    string `json:"scaler"`
	Algorithm string `json:"algorithm"`
}

// Keyer builds cache keys.
type Keyer interface {
	AvatarKey(digest string, opts AvatarKeyOpts) string
}

// DefaultKeyer produces keys of the form "avatar:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// AvatarKey implements Keyer.
func (DefaultKeyer) AvatarKey(digest string, opts AvatarKeyOpts) string {
	return hashKey("avatar", digest, opts)
}
