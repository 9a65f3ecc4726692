package cache

// ScopedKeyer prefixes every key of an inner Keyer. The server uses it to
// keep API-generated entries apart from CLI entries sharing one backend.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer falls back
// to [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SceneKey implements Keyer.
func (k *ScopedKeyer) SceneKey(example, definitionHash string) string {
	return k.prefix + k.inner.SceneKey(example, definitionHash)
}

// ArtifactKey implements Keyer.
func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}
