package pipeline

import (
	"strings"
	"testing"

	pkgio "github.com/saltsmart/tikzgo/pkg/io"
	"github.com/saltsmart/tikzgo/pkg/latex"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"tex", false},
		{"pdf", false},
		{"png", false},
		{"svg", true},
		{"invalid", true},
		{"PDF", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"tex", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"pdf", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Empty options should validate: %v", err)
	}

	if len(opts.Formats) != 1 || opts.Formats[0] != DefaultFormat {
		t.Errorf("Formats should default to [%s], got %v", DefaultFormat, opts.Formats)
	}
	if opts.Engine != latex.DefaultEngine {
		t.Errorf("Engine should default to %s, got %s", latex.DefaultEngine, opts.Engine)
	}
	if opts.DPI != latex.DefaultDPI {
		t.Errorf("DPI should default to %d, got %d", latex.DefaultDPI, opts.DPI)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger, got nil")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Formats: []string{FormatTex, FormatPNG}, DPI: 150}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalFormats := len(opts.Formats)
	originalEngine := opts.Engine
	originalDPI := opts.DPI

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
	if opts.Engine != originalEngine {
		t.Error("Engine changed on second call")
	}
	if opts.DPI != originalDPI {
		t.Error("DPI changed on second call")
	}
}

func TestOptionsValidateForCompile(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateForCompile(); err != nil {
		t.Errorf("Empty options should pass: %v", err)
	}
	if opts.Engine != latex.DefaultEngine {
		t.Errorf("Engine should default to %s, got %s", latex.DefaultEngine, opts.Engine)
	}

	opts = Options{Engine: "tex-live-2003"}
	if err := opts.ValidateForCompile(); err == nil {
		t.Error("Unknown engine should fail")
	}
}

func TestOptionsValidateForConvert(t *testing.T) {
	opts := Options{DPI: -1}
	if err := opts.ValidateForConvert(); err == nil {
		t.Error("Negative DPI should fail")
	}

	opts = Options{MaxWidth: -10}
	if err := opts.ValidateForConvert(); err == nil {
		t.Error("Negative max width should fail")
	}

	opts = Options{DPI: 72, MaxWidth: 640}
	if err := opts.ValidateForConvert(); err != nil {
		t.Errorf("Valid convert options should pass: %v", err)
	}
}

func TestOptionsShouldCrop(t *testing.T) {
	opts := Options{}
	if !opts.ShouldCrop() {
		t.Error("Cropping should be on by default")
	}

	opts.NoCrop = true
	if opts.ShouldCrop() {
		t.Error("NoCrop should disable cropping")
	}
}

func TestOptionsKeyOpts(t *testing.T) {
	opts := Options{
		Standalone: true,
		Preamble:   []string{`\usepackage{pgfplots}`},
		Engine:     latex.EngineLuaLaTeX,
		DPI:        600,
		NoCrop:     true,
		MaxWidth:   800,
	}

	tex := opts.TexKeyOpts()
	if !tex.Standalone || len(tex.Packages) != 1 {
		t.Errorf("TexKeyOpts did not carry generate options: %+v", tex)
	}

	pdf := opts.PDFKeyOpts()
	if pdf.Engine != latex.EngineLuaLaTeX {
		t.Errorf("PDFKeyOpts.Engine = %q, want %q", pdf.Engine, latex.EngineLuaLaTeX)
	}

	png := opts.PNGKeyOpts()
	if png.DPI != 600 || png.Crop || png.MaxWidth != 800 {
		t.Errorf("PNGKeyOpts did not carry convert options: %+v", png)
	}
}

func TestGenerateBare(t *testing.T) {
	pic := testPicture(t)
	code := pic.Code()

	out := Generate(pic, Options{})
	if string(out) != code {
		t.Errorf("Generate without Standalone should return the bare code:\n%s", out)
	}
}

func TestGenerateStandalone(t *testing.T) {
	pic := testPicture(t)

	out := string(Generate(pic, Options{Standalone: true}))
	if !strings.Contains(out, `\documentclass[crop,tikz]{standalone}`) {
		t.Errorf("Standalone output missing document class:\n%s", out)
	}
	if !strings.Contains(out, pic.Code()) {
		t.Errorf("Standalone output missing picture code:\n%s", out)
	}
}

func TestGenerateDocumentPassthrough(t *testing.T) {
	doc := `\documentclass{article}
\begin{document}
hello
\end{document}
`
	out := Generate(pkgio.Raw(doc), Options{Standalone: true})
	if string(out) != doc {
		t.Errorf("Complete document should pass through unchanged:\n%s", out)
	}
}

func TestCompileDocumentWrapsFragments(t *testing.T) {
	fragment := []byte("\\begin{tikzpicture}\n\\end{tikzpicture}\n")

	out := string(compileDocument(fragment, Options{}))
	if !strings.Contains(out, `\documentclass`) {
		t.Errorf("Fragment should be wrapped for compilation:\n%s", out)
	}

	doc := []byte(`\documentclass{standalone}`)
	if string(compileDocument(doc, Options{})) != string(doc) {
		t.Error("Complete document should not be re-wrapped")
	}
}
