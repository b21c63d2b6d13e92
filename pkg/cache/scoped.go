package cache

// ScopedKeyer prefixes every key from an inner Keyer so several deployments
// can share one backend without colliding, for example one redis serving a
// staging and a production instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with a key prefix. A nil inner uses the
// default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey returns the inner layout key with the scope prefix applied.
func (k *ScopedKeyer) LayoutKey(sourceHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(sourceHash, opts)
}

// RenderKey returns the inner render key with the scope prefix applied.
func (k *ScopedKeyer) RenderKey(layoutHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(layoutHash, opts)
}
