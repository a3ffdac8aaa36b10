// Package cache provides pluggable byte caches for rendered artifacts.
//
// The render pipeline produces three artifact kinds per picture: the
// TeX source, the compiled PDF, and the rasterized PNG. Each kind is
// cached under a content-derived key so that re-rendering an
// unchanged picture skips the expensive LaTeX and rasterizer runs
// entirely.
//
// Two backends ship with the CLI: [FileCache] for local use and
// [RedisCache] for shared setups. [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// TTLArtifact bounds how long cached artifacts are kept. Keys are
// content derived, so expiry only reclaims disk space, it never
// serves stale data.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is a byte store with optional expiry.
//
// Get reports a miss with a false second return rather than an error,
// so callers can fall through to a rebuild without error inspection.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error

	// Stats reports the entry count and payload size of the cache.
	Stats(ctx context.Context) (Stats, error)

	// Close releases any resources held by the backend.
	Close() error
}

// Stats summarizes cache contents.
type Stats struct {
	Entries int   // Number of stored entries
	Bytes   int64 // Total payload size in bytes
}

// Keyer derives cache keys for the three artifact stages. Keys embed
// a content hash and every option that changes the artifact, so any
// input or option change misses cleanly instead of serving a stale
// result.
type Keyer interface {
	// TexKey keys the generated TeX source by picture hash.
	TexKey(pictureHash string, opts TexKeyOpts) string

	// PDFKey keys the compiled PDF by TeX source hash.
	PDFKey(texHash string, opts PDFKeyOpts) string

	// PNGKey keys the rasterized PNG by PDF hash.
	PNGKey(pdfHash string, opts PNGKeyOpts) string
}

// TexKeyOpts are the options that change the generated TeX source.
type TexKeyOpts struct {
	Standalone bool     // Wrapped in a complete compilable document
	Packages   []string // Extra \usepackage entries
}

// PDFKeyOpts are the options that change the compiled PDF.
type PDFKeyOpts struct {
	Engine string // LaTeX engine binary, e.g. "latexmk"
}

// PNGKeyOpts are the options that change the rasterized PNG.
type PNGKeyOpts struct {
	DPI      int  // Rasterization density
	Crop     bool // Crop to drawn content
	MaxWidth int  // Downscale bound, 0 for none
}

// DefaultKeyer derives keys by hashing the stage inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TexKey generates a key for TeX source caching.
func (k *DefaultKeyer) TexKey(pictureHash string, opts TexKeyOpts) string {
	return hashKey("tex", pictureHash, opts.Standalone, opts.Packages)
}

// PDFKey generates a key for compiled PDF caching.
func (k *DefaultKeyer) PDFKey(texHash string, opts PDFKeyOpts) string {
	return hashKey("pdf", texHash, opts.Engine)
}

// PNGKey generates a key for rasterized PNG caching.
func (k *DefaultKeyer) PNGKey(pdfHash string, opts PNGKeyOpts) string {
	return hashKey("png", pdfHash, opts.DPI, opts.Crop, opts.MaxWidth)
}
