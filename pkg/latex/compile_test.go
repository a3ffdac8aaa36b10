package latex

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

func TestParseLaTeXLog(t *testing.T) {
	log := `This is pdfTeX, Version 3.141592653
(./drawing.tex
LaTeX2e <2023-11-01>
! Undefined control sequence.
<recently read> \badmacro

l.5 \badmacro
   {0}
! Missing $ inserted.
<inserted text>
                $
l.7 x^
      2
`
	got := parseLaTeXLog([]byte(log))
	want := []string{
		"! Undefined control sequence.",
		"l.5 \\badmacro",
		"! Missing $ inserted.",
		"l.7 x^",
	}
	if len(got) != len(want) {
		t.Fatalf("parseLaTeXLog() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseLaTeXLogClean(t *testing.T) {
	log := "This is pdfTeX\nOutput written on drawing.pdf (1 page)\n"
	if got := parseLaTeXLog([]byte(log)); len(got) != 0 {
		t.Errorf("parseLaTeXLog(clean) = %q, want empty", got)
	}
}

func TestParseLaTeXLogCapped(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 2*maxLogLines; i++ {
		b.WriteString("! Something broke.\n")
	}
	if got := parseLaTeXLog([]byte(b.String())); len(got) != maxLogLines {
		t.Errorf("parseLaTeXLog() returned %d lines, want %d", len(got), maxLogLines)
	}
}

func TestTailLines(t *testing.T) {
	data := []byte("one\n\ntwo\nthree\n\nfour\n")
	got := tailLines(data, 2)
	if len(got) != 2 || got[0] != "three" || got[1] != "four" {
		t.Errorf("tailLines() = %q, want [three four]", got)
	}
	if got := tailLines(nil, 3); len(got) != 0 {
		t.Errorf("tailLines(nil) = %q, want empty", got)
	}
}

func TestCompileRejectsBadEngine(t *testing.T) {
	c := &Compiler{Engine: "teximagic"}
	_, err := c.Compile(context.Background(), []byte(`\documentclass{standalone}`))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Compile() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

// writeStub installs an executable shell script named tool into dir.
func writeStub(t *testing.T, dir, tool, script string) {
	t.Helper()
	path := filepath.Join(dir, tool)
	if err := os.WriteFile(path, []byte(script), 0700); err != nil {
		t.Fatalf("write stub %s: %v", tool, err)
	}
}

// stubOutputDir is shared shell that extracts -output-directory=<dir>.
const stubOutputDir = `out=""
for arg in "$@"; do
  case "$arg" in
    -output-directory=*) out="${arg#-output-directory=}" ;;
  esac
done
`

func TestCompileWithStubLatexmk(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts need a POSIX shell")
	}

	bin := t.TempDir()
	writeStub(t, bin, "latexmk", "#!/bin/sh\n"+stubOutputDir+
		`printf '%s' '%PDF-1.5 stub' > "$out/drawing.pdf"`+"\n")
	writeStub(t, bin, "pdflatex", "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", bin)

	c := &Compiler{}
	pdf, err := c.Compile(context.Background(), []byte(`\documentclass{standalone}\begin{document}x\end{document}`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Errorf("Compile() returned %q, want PDF bytes", pdf)
	}
}

func TestCompileWithStubFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts need a POSIX shell")
	}

	bin := t.TempDir()
	writeStub(t, bin, "latexmk", "#!/bin/sh\n"+stubOutputDir+
		`printf '%s\n' 'This is pdfTeX' '! Undefined control sequence.' 'l.3 \nosuchmacro' > "$out/drawing.log"
exit 1
`)
	writeStub(t, bin, "pdflatex", "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", bin)

	c := &Compiler{}
	_, err := c.Compile(context.Background(), []byte(`\documentclass{standalone}`))
	if err == nil {
		t.Fatal("Compile() succeeded, want error")
	}

	var ce *errors.CompileError
	if !stderrors.As(err, &ce) {
		t.Fatalf("Compile() error = %T, want *errors.CompileError", err)
	}
	if ce.Engine != EnginePDFLaTeX {
		t.Errorf("Engine = %q, want %q", ce.Engine, EnginePDFLaTeX)
	}
	if len(ce.Lines) != 2 || ce.Lines[0] != "! Undefined control sequence." {
		t.Errorf("Lines = %q, want the two log error lines", ce.Lines)
	}
}

func TestCompileBuildDirKeepsArtifacts(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts need a POSIX shell")
	}

	bin := t.TempDir()
	writeStub(t, bin, "latexmk", "#!/bin/sh\n"+stubOutputDir+
		`printf '%s' '%PDF-1.5 stub' > "$out/drawing.pdf"`+"\n")
	writeStub(t, bin, "pdflatex", "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", bin)

	build := t.TempDir()
	c := &Compiler{BuildDir: build}
	if _, err := c.Compile(context.Background(), []byte("source")); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	tex, err := os.ReadFile(filepath.Join(build, "drawing.tex"))
	if err != nil {
		t.Fatalf("tex file missing from build dir: %v", err)
	}
	if string(tex) != "source" {
		t.Errorf("drawing.tex = %q, want %q", tex, "source")
	}
	if _, err := os.Stat(filepath.Join(build, "drawing.pdf")); err != nil {
		t.Errorf("pdf missing from build dir: %v", err)
	}
}

func TestCompileCanceledContext(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts need a POSIX shell")
	}

	bin := t.TempDir()
	writeStub(t, bin, "latexmk", "#!/bin/sh\nsleep 10\n")
	writeStub(t, bin, "pdflatex", "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", bin)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Compiler{}
	_, err := c.Compile(ctx, []byte("source"))
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Compile() error = %v, want context.Canceled", err)
	}
}
