package cache

import (
	"context"
	"time"
)

// Default TTLs for the different artifact classes. Parsed trees are
// content-addressed, so they can live long; rendered artifacts are
// cheaper to rebuild and expire sooner.
const (
	TTLTree   = 7 * 24 * time.Hour
	TTLRender = 24 * time.Hour
	TTLStats  = 24 * time.Hour
)

// Cache is a byte-oriented key-value store with expiration.
// Implementations: [FileCache] for CLI usage, [RedisCache] for the
// server, [NullCache] to disable caching.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKeyOpts captures the rendering parameters that affect output,
// so different renderings of the same tree get distinct keys.
type RenderKeyOpts struct {
	Format   string
	Detailed bool
	Scale    float64
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// TreeKey keys a parsed tree document by its source format and the
	// hash of the source text.
	TreeKey(format, sourceHash string) string

	// RenderKey keys a rendered artifact by the tree's content hash and
	// the rendering options.
	RenderKey(treeHash string, opts RenderKeyOpts) string

	// StatsKey keys computed tree statistics by the tree's content hash.
	StatsKey(treeHash string) string
}

// DefaultKeyer is the standard key scheme: a stage prefix followed by a
// hash of the identifying inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TreeKey generates a key for a parsed tree document.
func (k *DefaultKeyer) TreeKey(format, sourceHash string) string {
	return hashKey("tree", format, sourceHash)
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(treeHash string, opts RenderKeyOpts) string {
	return hashKey("render", treeHash, opts)
}

// StatsKey generates a key for computed statistics.
func (k *DefaultKeyer) StatsKey(treeHash string) string {
	return hashKey("stats", treeHash)
}
