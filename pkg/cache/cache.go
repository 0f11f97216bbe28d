// Package cache provides artifact caching for the generation pipeline.
//
// Backends:
//   - FileCache: directory of hashed JSON entries, used by the CLI
//   - RedisCache: Redis-backed storage for serving deployments
//   - MongoCache: MongoDB-backed storage where a document store is already around
//   - NullCache: no-op, caching disabled
//
// Keys are produced by a Keyer so that every consumer derives identical keys
// for identical work: grids are keyed by their generation parameters and
// seed, artifacts by the grid hash plus render options.
package cache

import (
	"context"
	"time"
)

// TTLs per cached object class. Grids are cheap to keep and slow to grow;
// artifacts re-render quickly from a cached grid.
const (
	TTLGrid     = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// GridKeyOpts are the generation parameters that determine a grid.
type GridKeyOpts struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Classes   int    `json:"classes"`
	Factor    int    `json:"factor"`
	Instances int    `json:"instances"`
	Skips     int    `json:"skips"`
	Kernel    int    `json:"kernel"`
	Seed      uint64 `json:"seed"`
}

// ArtifactKeyOpts are the render options that determine an artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Scale  int    `json:"scale"`
}

// Keyer derives cache keys for the pipeline stages.
type Keyer interface {
	// GridKey returns the key for a generated grid.
	GridKey(opts GridKeyOpts) string

	// ArtifactKey returns the key for a rendered artifact of the grid
	// identified by gridHash.
	ArtifactKey(gridHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the option structs into stable keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GridKey returns the key for a generated grid.
func (k *DefaultKeyer) GridKey(opts GridKeyOpts) string {
	return hashKey("grid", opts)
}

// ArtifactKey returns the key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", gridHash, opts)
}
