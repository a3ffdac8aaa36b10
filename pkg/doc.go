// Package pkg provides the core libraries for tikzgo TikZ rendering.
//
// # Overview
//
// tikzgo builds TikZ pictures programmatically in Go and compiles them to
// PDF and PNG through a real LaTeX toolchain. The pkg directory is
// organized into four main areas:
//
//  1. [tikz] - Drawing model (pictures, shapes, paths, transforms)
//  2. [pipeline] - Orchestration (generate → compile → rasterize)
//  3. [latex], [graph], [io] - Toolchain, graph layout, import/export
//  4. [cache], [store], [config], [preview] - Infrastructure
//
// # Architecture
//
// The typical data flow through tikzgo:
//
//	Go program / .tex source / JSON graph
//	         ↓
//	    [tikz] package (build the picture)
//	         ↓
//	    [pipeline] package (generate → compile → rasterize)
//	         ↓
//	    [latex] package (latexmk + pdftoppm)
//	         ↓
//	    TeX/PDF/PNG artifacts
//
// # Quick Start
//
// Build a picture and render it:
//
//	import (
//	    "context"
//	    "github.com/saltsmart/tikzgo/pkg/cache"
//	    "github.com/saltsmart/tikzgo/pkg/pipeline"
//	    "github.com/saltsmart/tikzgo/pkg/tikz"
//	)
//
//	// 1. Build a picture
//	pic := tikz.NewPicture()
//	pic.Circle(tikz.Pt(0, 0), 1, "draw, fill=blue!20")
//	pic.Node(tikz.Pt(0, 0), "origin")
//
//	// 2. Run the pipeline
//	c, _ := cache.NewFileCache(".tikzgo-cache")
//	runner := pipeline.NewRunner(c, nil, nil)
//	result, _ := runner.Execute(context.Background(), pic, pipeline.Options{
//	    Formats: []string{pipeline.FormatPDF, pipeline.FormatPNG},
//	})
//
//	// 3. Use the artifacts
//	pdf := result.Artifacts[pipeline.FormatPDF]
//
// # Main Packages
//
// ## Drawing Model
//
// [tikz] - The picture builder. A [tikz.Picture] is a canvas of drawables
// (lines, circles, ellipses, arcs, rectangles, nodes, plots, Bézier
// paths) plus nested scopes with clipping. Affine transforms (shift,
// scale, rotate) rewrite coordinates rather than emitting TikZ options,
// so rendered output stays plain. [tikz.Picture.Code] renders the
// tikzpicture environment deterministically.
//
// ## Orchestration
//
// [pipeline] - The complete generate → compile → rasterize pipeline used
// by the CLI and the preview server. Each stage output is cached under a
// content-derived key ([cache.Keyer]), so re-rendering an unchanged
// picture touches neither LaTeX nor the rasterizer.
//
// ## Toolchain
//
// [latex] - Thin wrappers for the external tools: [latex.Compiler] runs
// latexmk with a configurable engine (pdflatex, lualatex, xelatex) and
// parses error lines out of the log on failure; [latex.PDFToPNG] runs
// pdftoppm and optionally crops and resizes with golang.org/x/image.
//
// ## Graph Layout
//
// [graph] - JSON graphs in, TikZ pictures out. Coordinate assignment
// runs through the embedded Graphviz dot engine ([graph.ComputeLayout]),
// then [graph.ToPicture] converts the positioned nodes and edge splines
// into [tikz] drawables.
//
// ## Import/Export
//
// [io] - Reading and writing the formats tikzgo speaks: raw TikZ
// snippets, complete standalone documents, and JSON graphs.
//
// ## Infrastructure
//
// [cache] - Content-addressed artifact caching behind a small interface.
// Three backends: file (CLI default), Redis (shared across processes),
// and null (caching off).
//
// [store] - Named document persistence for the preview server. File and
// memory backends plus MongoDB for multi-user deployments.
//
// [config] - TOML configuration with defaults, loaded once by the CLI
// and threaded through context.
//
// [preview] - The preview HTTP server: HTML pages for browsing stored
// documents and REST endpoints that compile and serve their artifacts.
//
// [errors] - Error codes and the compile-failure type shared across
// packages.
//
// # Common Workflows
//
// Compile an existing TikZ file:
//
//	source, _ := os.ReadFile("figure.tex")
//	result, _ := runner.ExecuteSource(ctx, source, opts)
//
// Lay out a JSON graph as TikZ:
//
//	g, _ := io.ImportGraph("deps.json")
//	layout, _ := graph.ComputeLayout(ctx, g, graph.LayoutOptions{Direction: graph.DirectionLR})
//	pic, _ := graph.ToPicture(g, layout, graph.PictureOptions{})
//
// Serve a live preview:
//
//	st, _ := store.NewFileStore(dir)
//	srv, _ := preview.New(preview.Options{Addr: ":8264", Store: st, Runner: runner})
//	srv.Run(ctx)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/tikz/...               # Specific package
//	go test -run Example                 # Examples only
//	go test -tags integration ./pkg/...  # Include tests that need LaTeX
//
// [tikz]: https://pkg.go.dev/github.com/saltsmart/tikzgo/pkg/tikz
// [pipeline]: https://pkg.go.dev/github.com/saltsmart/tikzgo/pkg/pipeline
// [latex]: https://pkg.go.dev/github.com/saltsmart/tikzgo/pkg/latex
// [graph]: https://pkg.go.dev/github.com/saltsmart/tikzgo/pkg/graph
// [io]: https://pkg.go.dev/github.com/saltsmart/tikzgo/pkg/io
// [cache]: https://pkg.go.dev/github.com/saltsmart/tikzgo/pkg/cache
// [store]: https://pkg.go.dev/github.com/saltsmart/tikzgo/pkg/store
// [config]: https://pkg.go.dev/github.com/saltsmart/tikzgo/pkg/config
// [preview]: https://pkg.go.dev/github.com/saltsmart/tikzgo/pkg/preview
// [errors]: https://pkg.go.dev/github.com/saltsmart/tikzgo/pkg/errors
package pkg
