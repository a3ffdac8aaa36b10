package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/saltsmart/tikzgo/pkg/cache"
	"github.com/saltsmart/tikzgo/pkg/errors"
	pkgio "github.com/saltsmart/tikzgo/pkg/io"
	"github.com/saltsmart/tikzgo/pkg/latex"
	"github.com/saltsmart/tikzgo/pkg/observability"
	"github.com/saltsmart/tikzgo/pkg/tikz"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and preview server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → compile → rasterize pipeline for
// a picture with caching.
func (r *Runner) Execute(ctx context.Context, pic *tikz.Picture, opts Options) (*Result, error) {
	if pic == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "picture is nil")
	}
	return r.run(ctx, []byte(pic.Code()), len(pic.Drawables()), opts)
}

// ExecuteSource runs the pipeline over already-rendered TikZ or LaTeX
// source, as read from a .tex file. Complete documents compile as-is;
// bare fragments are wrapped in a standalone document first.
func (r *Runner) ExecuteSource(ctx context.Context, source []byte, opts Options) (*Result, error) {
	if len(source) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "source is empty")
	}
	return r.run(ctx, source, 0, opts)
}

// run drives the staged pipeline over rendered code.
func (r *Runner) run(ctx context.Context, code []byte, statements int, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		SourceHash: cache.Hash(code),
		Artifacts:  make(map[string][]byte),
	}
	result.Stats.Statements = statements

	// Stage 1: Generate
	generateStart := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, statements)
	tex, texHit := r.generateCached(ctx, code, result.SourceHash, opts)
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.TexBytes = len(tex)
	result.CacheInfo.TexHit = texHit
	observability.Pipeline().OnGenerateComplete(ctx, statements, len(tex), result.Stats.GenerateTime, nil)

	if slices.Contains(opts.Formats, FormatTex) {
		result.Artifacts[FormatTex] = tex
	}

	r.Logger.Info("generated tex",
		"statements", statements,
		"bytes", len(tex),
		"duration", result.Stats.GenerateTime)

	needPDF := slices.Contains(opts.Formats, FormatPDF)
	needPNG := slices.Contains(opts.Formats, FormatPNG)
	if !needPDF && !needPNG {
		return result, nil
	}

	// Stage 2: Compile
	compileStart := time.Now()
	pdf, pdfHit, err := r.CompilePDFWithCacheInfo(ctx, compileDocument(code, opts), opts)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	result.Stats.CompileTime = time.Since(compileStart)
	result.Stats.PDFBytes = len(pdf)
	result.CacheInfo.PDFHit = pdfHit
	if needPDF {
		result.Artifacts[FormatPDF] = pdf
	}

	r.Logger.Info("compiled pdf",
		"engine", opts.Engine,
		"bytes", len(pdf),
		"cached", pdfHit,
		"duration", result.Stats.CompileTime)

	if !needPNG {
		return result, nil
	}

	// Stage 3: Rasterize
	convertStart := time.Now()
	png, pngHit, err := r.ConvertPNGWithCacheInfo(ctx, pdf, opts)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	result.Stats.ConvertTime = time.Since(convertStart)
	result.Stats.PNGBytes = len(png)
	result.CacheInfo.PNGHit = pngHit
	result.Artifacts[FormatPNG] = png

	r.Logger.Info("rasterized png",
		"dpi", opts.DPI,
		"bytes", len(png),
		"cached", pngHit,
		"duration", result.Stats.ConvertTime)

	return result, nil
}

// generateCached produces the TeX artifact for code, consulting the
// cache first. Generation is cheap, so failures only mean a rebuild;
// the second return reports a cache hit.
func (r *Runner) generateCached(ctx context.Context, code []byte, sourceHash string, opts Options) ([]byte, bool) {
	key := r.Keyer.TexKey(sourceHash, opts.TexKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, FormatTex)
			return data, true
		}
		observability.Cache().OnCacheMiss(ctx, FormatTex)
	}

	tex := Generate(pkgio.Raw(code), opts)
	_ = r.Cache.Set(ctx, key, tex, cache.TTLArtifact)
	observability.Cache().OnCacheSet(ctx, FormatTex, len(tex))
	return tex, false
}

// CompilePDFWithCacheInfo compiles a complete LaTeX document to PDF
// with caching and returns cache hit info. The cache is checked before
// the toolchain is located, so cached documents compile even on
// machines without LaTeX installed.
func (r *Runner) CompilePDFWithCacheInfo(ctx context.Context, document []byte, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateForCompile(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	key := r.Keyer.PDFKey(cache.Hash(document), opts.PDFKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, FormatPDF)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, FormatPDF)
	}

	compiler := &latex.Compiler{
		Engine:      opts.Engine,
		BuildDir:    opts.BuildDir,
		KeepScratch: opts.KeepScratch,
		Logger:      opts.Logger,
	}

	start := time.Now()
	observability.Pipeline().OnCompileStart(ctx, opts.Engine)
	pdf, err := compiler.Compile(ctx, document)
	observability.Pipeline().OnCompileComplete(ctx, opts.Engine, len(pdf), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, key, pdf, cache.TTLArtifact)
	observability.Cache().OnCacheSet(ctx, FormatPDF, len(pdf))
	return pdf, false, nil
}

// CompilePDF is a convenience wrapper that calls CompilePDFWithCacheInfo and discards the cache hit info.
func (r *Runner) CompilePDF(ctx context.Context, document []byte, opts Options) ([]byte, error) {
	pdf, _, err := r.CompilePDFWithCacheInfo(ctx, document, opts)
	return pdf, err
}

// ConvertPNGWithCacheInfo rasterizes a PDF to PNG with caching and
// returns cache hit info.
func (r *Runner) ConvertPNGWithCacheInfo(ctx context.Context, pdf []byte, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateForConvert(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	key := r.Keyer.PNGKey(cache.Hash(pdf), opts.PNGKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, FormatPNG)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, FormatPNG)
	}

	start := time.Now()
	observability.Pipeline().OnConvertStart(ctx, opts.DPI)
	png, err := latex.PDFToPNG(ctx, pdf, latex.PNGOptions{
		DPI:      opts.DPI,
		Crop:     opts.ShouldCrop(),
		MaxWidth: opts.MaxWidth,
	})
	observability.Pipeline().OnConvertComplete(ctx, opts.DPI, len(png), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, key, png, cache.TTLArtifact)
	observability.Cache().OnCacheSet(ctx, FormatPNG, len(png))
	return png, false, nil
}

// ConvertPNG is a convenience wrapper that calls ConvertPNGWithCacheInfo and discards the cache hit info.
func (r *Runner) ConvertPNG(ctx context.Context, pdf []byte, opts Options) ([]byte, error) {
	png, _, err := r.ConvertPNGWithCacheInfo(ctx, pdf, opts)
	return png, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
