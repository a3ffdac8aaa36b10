// Package latex compiles LaTeX sources into PDF and PNG artifacts
// using a locally installed TeX toolchain.
//
// Compilation shells out to latexmk, which drives the chosen engine
// and re-runs it until references settle. PNG conversion shells out to
// pdftoppm and post-processes the bitmap in Go. Both tools are located
// on PATH at call time, so a missing toolchain surfaces as an
// ENGINE_NOT_FOUND error with install instructions rather than a
// cryptic exec failure.
package latex

import (
	"os/exec"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// Supported TeX engines. latexmk maps each to its own driver flag.
const (
	EnginePDFLaTeX = "pdflatex"
	EngineLuaLaTeX = "lualatex"
	EngineXeLaTeX  = "xelatex"
)

// DefaultEngine is used when no engine is configured.
const DefaultEngine = EnginePDFLaTeX

// ValidEngines is the set of supported TeX engines.
var ValidEngines = map[string]bool{
	EnginePDFLaTeX: true,
	EngineLuaLaTeX: true,
	EngineXeLaTeX:  true,
}

// ValidateEngine checks that an engine name is supported.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid engine: %q (must be one of: pdflatex, lualatex, xelatex)", engine)
	}
	return nil
}

// engineFlag returns the latexmk driver flag for an engine.
func engineFlag(engine string) string {
	switch engine {
	case EngineLuaLaTeX:
		return "-lualatex"
	case EngineXeLaTeX:
		return "-xelatex"
	default:
		return "-pdf"
	}
}

// findTool resolves a toolchain binary on PATH.
func findTool(name, hint string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.New(errors.ErrCodeEngineNotFound,
			"%s not found. Install with:\n%s", name, hint)
	}
	return path, nil
}

const (
	latexmkHint = "  macOS:  brew install --cask mactex-no-gui\n  Linux:  apt install latexmk texlive-latex-extra"
	popplerHint = "  macOS:  brew install poppler\n  Linux:  apt install poppler-utils"
)

// findLatexmk locates latexmk and the engine binary it will drive.
func findLatexmk(engine string) (string, error) {
	path, err := findTool("latexmk", latexmkHint)
	if err != nil {
		return "", err
	}
	if _, err := exec.LookPath(engine); err != nil {
		return "", errors.New(errors.ErrCodeEngineNotFound,
			"latexmk is installed but %s is not. Install with:\n%s", engine, latexmkHint)
	}
	return path, nil
}

// findPdftoppm locates the poppler PDF rasterizer.
func findPdftoppm() (string, error) {
	return findTool("pdftoppm", popplerHint)
}
