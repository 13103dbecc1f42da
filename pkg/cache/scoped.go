package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one backend without colliding.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer is replaced
// by DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// AvatarKey generates a prefixed key for identicon caching.
func (k *ScopedKeyer) AvatarKey(digest string, opts AvatarKeyOpts) string {
	return k.prefix + k.inner.AvatarKey(digest, opts)
}
