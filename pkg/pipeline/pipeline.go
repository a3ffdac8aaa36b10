// Package pipeline provides the core rendering pipeline for tikzgo.
//
// This package implements the complete generate → compile → rasterize
// pipeline that is shared by the CLI and the preview server. Central-
// izing this logic keeps behavior consistent across entry points and
// gives every caller the same per-stage caching.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Render a picture to TikZ source, optionally wrapped
//     in a standalone document
//  2. Compile: Run the source through latexmk to a PDF
//  3. Rasterize: Convert the PDF to a PNG with pdftoppm
//
// Each stage can be run independently or as part of the complete
// pipeline. Stage outputs are cached under content-derived keys, so
// re-rendering an unchanged picture touches neither LaTeX nor the
// rasterizer.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Formats: []string{"pdf", "png"},
//	}
//	result, err := runner.Execute(ctx, pic, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.Artifacts["pdf"]
//
// Run individual stages:
//
//	// Compile an existing document
//	pdf, err := runner.CompilePDF(ctx, document, opts)
//
//	// Rasterize an existing PDF
//	png, err := runner.ConvertPNG(ctx, pdf, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/saltsmart/tikzgo/pkg/cache"
	"github.com/saltsmart/tikzgo/pkg/errors"
	"github.com/saltsmart/tikzgo/pkg/latex"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// Format constants for output formats.
const (
	FormatTex = "tex"
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// DefaultFormat is produced when no formats are requested.
const DefaultFormat = FormatPDF

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTex: true,
	FormatPDF: true,
	FormatPNG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Generate options
	Formats    []string `json:"formats,omitempty"`
	Standalone bool     `json:"standalone,omitempty"` // Emit the tex artifact as a complete document
	Preamble   []string `json:"preamble,omitempty"`   // Extra preamble lines for the document

	// Compile options
	Engine      string `json:"engine,omitempty"`
	BuildDir    string `json:"build_dir,omitempty"`
	KeepScratch bool   `json:"keep_scratch,omitempty"`

	// Rasterize options
	DPI      int  `json:"dpi,omitempty"`
	NoCrop   bool `json:"no_crop,omitempty"` // Keep the background margin (default: false = crop)
	MaxWidth int  `json:"max_width,omitempty"`

	// Refresh bypasses cache reads; results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SourceHash is the content hash of the rendered TikZ code.
	SourceHash string

	// Artifacts contains outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Statements   int // Drawable count of the picture, zero for raw source
	TexBytes     int
	PDFBytes     int
	PNGBytes     int
	GenerateTime time.Duration
	CompileTime  time.Duration
	ConvertTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	TexHit bool // Whether the tex artifact came from cache
	PDFHit bool // Whether the PDF came from cache
	PNGHit bool // Whether the PNG came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: tex, pdf, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times
// has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := o.ValidateForCompile(); err != nil {
		return err
	}
	if err := o.ValidateForConvert(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetGenerateDefaults sets default values for TikZ generation.
func (o *Options) SetGenerateDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetCompileDefaults sets default values for compilation.
func (o *Options) SetCompileDefaults() {
	if o.Engine == "" {
		o.Engine = latex.DefaultEngine
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForCompile validates and sets defaults for compilation.
func (o *Options) ValidateForCompile() error {
	o.SetCompileDefaults()
	return latex.ValidateEngine(o.Engine)
}

// SetConvertDefaults sets default values for rasterization.
func (o *Options) SetConvertDefaults() {
	if o.DPI == 0 {
		o.DPI = latex.DefaultDPI
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForConvert validates and sets defaults for rasterization.
func (o *Options) ValidateForConvert() error {
	o.SetConvertDefaults()
	if o.DPI < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "dpi must be positive, got %d", o.DPI)
	}
	if o.MaxWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_width must not be negative, got %d", o.MaxWidth)
	}
	return nil
}

// ShouldCrop returns whether the PNG is cropped to its content.
func (o *Options) ShouldCrop() bool {
	return !o.NoCrop
}

// TexKeyOpts returns cache key options for the generate stage.
func (o *Options) TexKeyOpts() cache.TexKeyOpts {
	return cache.TexKeyOpts{
		Standalone: o.Standalone,
		Packages:   o.Preamble,
	}
}

// PDFKeyOpts returns cache key options for the compile stage.
func (o *Options) PDFKeyOpts() cache.PDFKeyOpts {
	return cache.PDFKeyOpts{
		Engine: o.Engine,
	}
}

// PNGKeyOpts returns cache key options for the rasterize stage.
func (o *Options) PNGKeyOpts() cache.PNGKeyOpts {
	return cache.PNGKeyOpts{
		DPI:      o.DPI,
		Crop:     o.ShouldCrop(),
		MaxWidth: o.MaxWidth,
	}
}
