package cache

// ScopedKeyer wraps a Keyer with a prefix so separate projects or
// users sharing one cache backend get isolated namespaces.
//
// Example usage:
//
//	// Per-project keys on a shared Redis
//	projectKeyer := NewScopedKeyer(NewDefaultKeyer(), "paper-figs:")
//
//	// Unscoped keys for a private local cache
//	localKeyer := NewDefaultKeyer()
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

// TexKey generates a prefixed key for TeX source caching.
func (k *ScopedKeyer) TexKey(pictureHash string, opts TexKeyOpts) string {
	return k.prefix + k.inner.TexKey(pictureHash, opts)
}

// PDFKey generates a prefixed key for compiled PDF caching.
func (k *ScopedKeyer) PDFKey(texHash string, opts PDFKeyOpts) string {
	return k.prefix + k.inner.PDFKey(texHash, opts)
}

// PNGKey generates a prefixed key for rasterized PNG caching.
func (k *ScopedKeyer) PNGKey(pdfHash string, opts PNGKeyOpts) string {
	return k.prefix + k.inner.PNGKey(pdfHash, opts)
}
