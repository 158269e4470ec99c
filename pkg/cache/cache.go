// Package cache provides artifact caching for the scene generator.
//
// Scene generation is deterministic given a seed, so a rendered worksheet can
// be cached and reused whenever the same word bank, criteria, and options
// come around again. Two backends are provided: a file cache for CLI usage
// and a null cache that disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by content-derived strings.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (0 = no expiration).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts carries everything that influences a rendered artifact.
// Two generation requests with identical opts and word bank produce
// byte-identical output, so they share a cache entry.
type ArtifactKeyOpts struct {
	Mode     string `json:"mode"`
	Count    int    `json:"count"`
	Seed     uint64 `json:"seed"`
	Format   string `json:"format"`
	Criteria string `json:"criteria"` // canonical filter summary
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact. bankHash is the
	// content hash of the word bank the scene was generated from.
	ArtifactKey(bankHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (k *DefaultKeyer) ArtifactKey(bankHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", bankHash, opts)
}
