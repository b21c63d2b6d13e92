// Package cache provides pluggable result caching for the layout and render
// pipeline.
//
// Laying out a graph and rasterizing the result are the expensive steps of
// the pipeline, and both are pure functions of their inputs: the same DOT
// source laid out with the same engine always yields the same positioned
// graph, and the same positioned graph rendered to the same format always
// yields the same bytes. That makes both stages safe to cache by content
// hash.
//
// # Backends
//
//   - NullCache: no-op, for tests and disabled caching
//   - FileCache: directory of JSON entries, for CLI usage
//   - RedisCache: Redis-backed, for server deployments
//   - MongoCache: MongoDB-backed, for deployments that already run Mongo
//
// # Keys
//
// A Keyer turns stage inputs into cache keys. Keys are content hashes, so
// any change to the source, the engine, or the output format produces a
// different key and entries never need invalidation.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.LayoutKey(cache.Hash(source), cache.LayoutKeyOpts{Engine: "dot"})
//
// Use a ScopedKeyer to namespace keys when several deployments share one
// backend.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type. Keys are content hashes, so entries never go
// stale; the TTLs only bound storage growth.
const (
	// TTLLayout is the default lifetime of positioned graph entries.
	TTLLayout = 7 * 24 * time.Hour

	// TTLRender is the default lifetime of rendered artifact entries.
	TTLRender = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value from the cache.
	// The boolean reports whether the key was found; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL.
	// A non-positive TTL stores the value without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for positioned graph output.
	// sourceHash is the content hash of the DOT source being laid out.
	LayoutKey(sourceHash string, opts LayoutKeyOpts) string

	// RenderKey generates a key for rendered artifacts.
	// layoutHash is the content hash of the positioned graph being rendered.
	RenderKey(layoutHash string, opts RenderKeyOpts) string
}

// LayoutKeyOpts captures the options that change layout output.
type LayoutKeyOpts struct {
	Engine string
}

// RenderKeyOpts captures the options that change rendered output.
type RenderKeyOpts struct {
	Format string
}

// DefaultKeyer generates content-hash cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for positioned graph output.
func (k *DefaultKeyer) LayoutKey(sourceHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", sourceHash, opts)
}

// RenderKey generates a key for rendered artifacts.
func (k *DefaultKeyer) RenderKey(layoutHash string, opts RenderKeyOpts) string {
	return hashKey("render", layoutHash, opts)
}
