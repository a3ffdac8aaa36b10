package latex

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// jobName is the fixed basename for scratch artifacts, so a reused
// build directory always holds drawing.tex/.pdf/.log.
const jobName = "drawing"

// maxLogLines caps how many error lines a CompileError carries.
const maxLogLines = 20

// Compiler runs latexmk on complete LaTeX documents.
// The zero value compiles with pdflatex in a throwaway scratch
// directory and discards diagnostics.
type Compiler struct {
	// Engine selects the TeX engine latexmk drives.
	// Empty means DefaultEngine.
	Engine string

	// BuildDir reuses a fixed directory across runs so latexmk can
	// skip unchanged work. Empty means a fresh scratch directory per
	// compile, removed afterwards.
	BuildDir string

	// KeepScratch leaves the scratch directory behind for inspection.
	KeepScratch bool

	// Logger receives per-run diagnostics. Nil discards them.
	Logger *log.Logger
}

func (c *Compiler) setDefaults() {
	if c.Engine == "" {
		c.Engine = DefaultEngine
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Compile runs the document through latexmk and returns the PDF bytes.
// Engine errors come back as a *errors.CompileError carrying the `!`
// lines from the TeX log.
func (c *Compiler) Compile(ctx context.Context, source []byte) ([]byte, error) {
	c.setDefaults()
	if err := ValidateEngine(c.Engine); err != nil {
		return nil, err
	}
	latexmk, err := findLatexmk(c.Engine)
	if err != nil {
		return nil, err
	}

	dir := c.BuildDir
	scratch := dir == ""
	if scratch {
		dir = filepath.Join(os.TempDir(), "tikzgo-"+uuid.NewString())
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create build dir")
	}
	if scratch && !c.KeepScratch {
		defer os.RemoveAll(dir)
	}

	texPath := filepath.Join(dir, jobName+".tex")
	if err := os.WriteFile(texPath, source, 0600); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write tex file")
	}

	args := []string{
		engineFlag(c.Engine),
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory=" + dir,
		texPath,
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, latexmk, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if runErr := cmd.Run(); runErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lines := parseLaTeXLog(readLog(dir))
		if len(lines) == 0 {
			lines = tailLines(stdout.Bytes(), 5)
		}
		if len(lines) == 0 {
			lines = tailLines(stderr.Bytes(), 5)
		}
		c.Logger.Debug("latexmk failed", "engine", c.Engine, "dir", dir, "err", runErr)
		return nil, &errors.CompileError{Engine: c.Engine, Lines: lines}
	}

	c.Logger.Debug("latexmk finished",
		"engine", c.Engine,
		"duration", time.Since(start).Round(time.Millisecond),
		"dir", dir)

	pdf, err := os.ReadFile(filepath.Join(dir, jobName+".pdf"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCompileFailed, err, "read compiled PDF")
	}
	return pdf, nil
}

// readLog returns the TeX log contents, or nil if there is none.
func readLog(dir string) []byte {
	data, err := os.ReadFile(filepath.Join(dir, jobName+".log"))
	if err != nil {
		return nil
	}
	return data
}

// parseLaTeXLog extracts error lines from a TeX log. TeX marks errors
// with a leading `!` and follows them with an `l.<line>` source
// reference a few lines later.
func parseLaTeXLog(data []byte) []string {
	var lines []string
	afterError := false

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() && len(lines) < maxLogLines {
		line := strings.TrimRight(sc.Text(), " ")
		switch {
		case strings.HasPrefix(line, "!"):
			lines = append(lines, line)
			afterError = true
		case afterError && strings.HasPrefix(line, "l."):
			lines = append(lines, line)
			afterError = false
		}
	}
	return lines
}

// tailLines returns the last n non-empty lines of command output.
func tailLines(data []byte, n int) []string {
	all := strings.Split(strings.TrimSpace(string(data)), "\n")
	var lines []string
	for _, line := range all {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
