package pipeline

import (
	pkgio "github.com/saltsmart/tikzgo/pkg/io"
)

// Generate renders the TeX artifact for src. With Standalone set the
// code is wrapped in a complete document; sources that already are
// complete documents pass through unchanged either way.
func Generate(src pkgio.Source, opts Options) []byte {
	opts.SetGenerateDefaults()
	code := []byte(src.Code())
	if opts.Standalone && !pkgio.IsDocument(code) {
		return pkgio.Document(src, opts.Preamble)
	}
	return code
}

// compileDocument returns the complete LaTeX document handed to the
// engine. Bare fragments are wrapped; full documents compile as-is.
func compileDocument(code []byte, opts Options) []byte {
	if pkgio.IsDocument(code) {
		return code
	}
	return pkgio.Document(pkgio.Raw(code), opts.Preamble)
}
