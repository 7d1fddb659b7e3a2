package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The server uses this to keep per-collection caches separate from the
// shared content-addressed cache.
//
// Example usage:
//
//	// Collection-specific keys
//	collKeyer := NewScopedKeyer(NewDefaultKeyer(), "coll:phylo:")
//
//	// Shared keys for content-addressed trees
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TreeKey generates a prefixed key for a parsed tree document.
func (k *ScopedKeyer) TreeKey(format, sourceHash string) string {
	return k.prefix + k.inner.TreeKey(format, sourceHash)
}

// RenderKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) RenderKey(treeHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(treeHash, opts)
}

// StatsKey generates a prefixed key for computed statistics.
func (k *ScopedKeyer) StatsKey(treeHash string) string {
	return k.prefix + k.inner.StatsKey(treeHash)
}
