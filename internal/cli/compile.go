package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saltsmart/tikzgo/pkg/errors"
	"github.com/saltsmart/tikzgo/pkg/pipeline"
)

// ErrReported signals that a command already printed its own
// diagnostics; main exits non-zero without printing the error again.
var ErrReported = stderrors.New("already reported")

// compileOpts holds the command-line flags for the compile command.
type compileOpts struct {
	output      string   // output file (single format) or base path (multiple)
	formats     []string // artifact formats: tex, pdf, png
	engine      string   // TeX engine override, empty means config value
	dpi         int      // PNG resolution override, zero means config value
	noCrop      bool     // keep the PDF page margin in PNG output
	maxWidth    int      // downscale PNGs wider than this, zero means config value
	standalone  bool     // emit the tex artifact as a complete document
	preamble    []string // extra preamble lines on top of the config
	keepScratch bool     // keep the latexmk scratch directory for inspection
	noCache     bool     // disable the artifact cache for this run
	refresh     bool     // recompute even when artifacts are cached
}

// newCompileCmd creates the compile command. It runs an existing TikZ
// file through the generate/compile/rasterize pipeline and writes the
// requested artifacts next to the input (or to --output).
func newCompileCmd() *cobra.Command {
	var formatsStr string
	var opts compileOpts

	cmd := &cobra.Command{
		Use:   "compile <file.tex>",
		Short: "Compile a TikZ file to PDF or PNG",
		Long: `Compile runs a TikZ picture file through latexmk and pdftoppm to
produce PDF and PNG artifacts. The input may be a bare tikzpicture
fragment; it is wrapped in a standalone document before compilation.

Artifacts are cached by content hash, so recompiling an unchanged file
never invokes the TeX toolchain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runCompile(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), png, tex (comma-separated)")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "TeX engine: pdflatex, xelatex, lualatex (default from config)")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "PNG resolution in dots per inch (default from config)")
	cmd.Flags().BoolVar(&opts.noCrop, "no-crop", false, "keep the page margin instead of cropping PNGs to content")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 0, "downscale PNGs wider than this many pixels")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "emit the tex artifact as a complete document")
	cmd.Flags().StringArrayVar(&opts.preamble, "preamble", nil, "extra preamble line (repeatable)")
	cmd.Flags().BoolVar(&opts.keepScratch, "keep-scratch", false, "keep the latexmk scratch directory")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute artifacts even when cached")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["pdf"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	return strings.Split(s, ",")
}

// pipelineOptionsFor layers the compile flags over the configured
// pipeline defaults.
func (o *compileOpts) pipelineOptionsFor(ctx context.Context) pipeline.Options {
	base := pipelineOptions(configFromContext(ctx))
	base.Formats = o.formats
	base.Standalone = o.standalone
	base.Preamble = append(base.Preamble, o.preamble...)
	base.KeepScratch = o.keepScratch
	base.Refresh = o.refresh
	if o.engine != "" {
		base.Engine = o.engine
	}
	if o.dpi > 0 {
		base.DPI = o.dpi
	}
	if o.noCrop {
		base.NoCrop = true
	}
	if o.maxWidth > 0 {
		base.MaxWidth = o.maxWidth
	}
	return base
}

// runCompile reads the input file, runs the pipeline, and writes every
// requested artifact.
func runCompile(ctx context.Context, input string, opts *compileOpts) error {
	logger := loggerFromContext(ctx)

	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	popts := opts.pipelineOptionsFor(ctx)
	logger.Debug("compile options",
		"formats", strings.Join(opts.formats, ","),
		"engine", popts.Engine,
		"dpi", popts.DPI)

	runner, err := buildRunner(ctx, configFromContext(ctx), opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	sp := newSpinnerWithContext(ctx, "Compiling "+filepath.Base(input)+"...")
	sp.Start()

	result, err := runner.ExecuteSource(ctx, source, popts)
	if err != nil {
		sp.Stop()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return reportPipelineError(err)
	}

	sp.StopWithSuccess(fmt.Sprintf("Compiled %s", filepath.Base(input)))
	printPipelineStats(result)

	return writeArtifacts(result, input, opts.output, opts.formats)
}

// reportPipelineError prints engine diagnostics line by line when err
// carries them, returning ErrReported; other errors pass through for
// main to print.
func reportPipelineError(err error) error {
	var cerr *errors.CompileError
	if stderrors.As(err, &cerr) {
		printError("%s failed", cerr.Engine)
		for _, line := range cerr.Lines {
			printDetail("%s", line)
		}
		return ErrReported
	}
	return err
}

// writeArtifacts saves each requested format to its destination path
// and prints the files written.
func writeArtifacts(result *pipeline.Result, input, output string, formats []string) error {
	multi := len(formats) > 1
	for _, format := range formats {
		path := outputPath(output, input, format, multi)
		if samePath(path, input) {
			return fmt.Errorf("%s output %s would overwrite the input; use -o to pick another path", format, path)
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// outputPath derives the destination file for one artifact format.
// A non-empty output names the file directly when a single format is
// requested; otherwise it serves as the base path. Without an output,
// the base path is the input with its extension stripped.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input
// paths, stripping a known format extension from an explicit output so
// "figure.pdf" with formats pdf,png yields figure.pdf and figure.png.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// samePath reports whether two paths name the same file lexically.
func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
