package io

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// A Source provides rendered TikZ code. [tikz.Picture] and every
// drawable satisfy it.
//
// [tikz.Picture]: github.com/saltsmart/tikzgo/pkg/tikz.Picture
type Source interface {
	Code() string
}

// Raw adapts already-rendered TikZ or LaTeX text to the [Source]
// interface, for feeding files through the same paths as pictures.
type Raw []byte

// Code returns the raw text unchanged.
func (r Raw) Code() string { return string(r) }

// IsDocument reports whether source is already a complete LaTeX
// document rather than a bare fragment, so callers know whether
// [Document] wrapping is needed before compilation.
func IsDocument(source []byte) bool {
	return bytes.Contains(source, []byte(`\documentclass`))
}

// documentHeader opens a standalone class document with the TikZ
// libraries the drawing objects can reference.
const documentHeader = `\documentclass[crop,tikz]{standalone}
\usetikzlibrary{arrows.meta}
\usetikzlibrary{calc}
\usetikzlibrary{shapes.geometric}
`

// WriteTex writes the bare rendered code to w, for embedding in an
// existing LaTeX document.
func WriteTex(s Source, w io.Writer) error {
	if _, err := io.WriteString(w, s.Code()); err != nil {
		return fmt.Errorf("write tex: %w", err)
	}
	return nil
}

// ExportTex writes the bare rendered code to a file at path.
// This is a convenience wrapper around [WriteTex] for file-based output.
func ExportTex(s Source, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTex(s, f)
}

// Document wraps the rendered code in a standalone LaTeX document.
// Extra preamble lines render between the built-in library imports and
// \begin{document}; a missing trailing newline on a line is supplied.
// The result compiles on its own with any LaTeX engine.
func Document(s Source, preamble []string) []byte {
	var b strings.Builder
	b.WriteString(documentHeader)
	for _, line := range preamble {
		b.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			b.WriteByte('\n')
		}
	}
	b.WriteString("\\begin{document}\n")
	b.WriteString(s.Code())
	b.WriteString("\\end{document}\n")
	return []byte(b.String())
}

// WriteDocument writes a standalone document for s to w.
// See [Document] for the layout.
func WriteDocument(s Source, preamble []string, w io.Writer) error {
	if _, err := w.Write(Document(s, preamble)); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// ExportDocument writes a standalone document for s to a file at path.
// This is a convenience wrapper around [WriteDocument] for file-based
// output.
func ExportDocument(s Source, preamble []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDocument(s, preamble, f)
}
