package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/saltsmart/tikzgo/pkg/pipeline"
	"github.com/saltsmart/tikzgo/pkg/tikz"
)

// exampleEntry is one built-in gallery picture.
type exampleEntry struct {
	name        string
	description string
	build       func() (*tikz.Picture, error)
}

// gallery holds the built-in examples, alphabetized. Together they
// exercise every drawable and transform the library offers.
var gallery = []exampleEntry{
	{"bezier", "Freeform path mixing straight and Bézier segments", buildBezier},
	{"clipped", "Lens shape cut from two circles with a scope clip", buildClipped},
	{"flowchart", "Stacked stages connected by arrows, with a shared style", buildFlowchart},
	{"orbits", "Elliptical orbits around a star, with a comet arc", buildOrbits},
	{"spiral", "Nested squares rotated into a spiral", buildSpiral},
	{"transforms", "One rectangle under shift, scale, and rotate", buildTransforms},
	{"waves", "Phase-shifted sine waves as smooth plots", buildWaves},
}

// exampleNames returns the gallery names in order.
func exampleNames() []string {
	names := make([]string, len(gallery))
	for i, e := range gallery {
		names[i] = e.name
	}
	return names
}

// findExample looks up a gallery entry by name.
func findExample(name string) (exampleEntry, bool) {
	for _, e := range gallery {
		if e.name == name {
			return e, true
		}
	}
	return exampleEntry{}, false
}

// examplesOpts holds the command-line flags for the examples command.
type examplesOpts struct {
	outDir  string   // directory receiving the rendered files
	formats []string // artifact formats: tex, pdf, png
	list    bool     // print the gallery instead of rendering
	noCache bool     // disable the artifact cache for this run
}

// newExamplesCmd creates the examples command, a gallery of built-in
// pictures. Without a name it opens an interactive picker.
func newExamplesCmd() *cobra.Command {
	var formatsStr string
	opts := examplesOpts{outDir: "."}

	cmd := &cobra.Command{
		Use:   "examples [name]",
		Short: "Render a built-in example picture",
		Long: `Examples renders one of the built-in gallery pictures. Run with
--list to see what is available, name an example to render it, or run
without arguments to pick one interactively.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return exampleNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runExamples(cmd.Context(), name, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "output", "o", opts.outDir, "output directory")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), png, tex (comma-separated)")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list available examples")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runExamples lists, picks, or renders a gallery entry.
func runExamples(ctx context.Context, name string, opts *examplesOpts) error {
	if opts.list {
		printInfo("Available examples")
		for _, e := range gallery {
			printKeyValue(e.name, e.description)
		}
		return nil
	}

	if name == "" {
		picked, err := pickExample()
		if err != nil {
			return err
		}
		if picked == "" {
			printDetail("No selection made")
			return nil
		}
		name = picked
	}

	entry, ok := findExample(name)
	if !ok {
		return fmt.Errorf("unknown example: %s (available: %s)", name, strings.Join(exampleNames(), ", "))
	}

	pic, err := entry.build()
	if err != nil {
		return err
	}

	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	popts := pipelineOptions(cfg)
	popts.Formats = opts.formats

	runner, err := buildRunner(ctx, cfg, opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	sp := newSpinnerWithContext(ctx, "Rendering "+entry.name+"...")
	sp.Start()

	result, err := runner.Execute(ctx, pic, popts)
	if err != nil {
		sp.Stop()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return reportPipelineError(err)
	}

	sp.StopWithSuccess(fmt.Sprintf("Rendered %s", entry.name))
	printPipelineStats(result)

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", opts.outDir, err)
	}
	for _, format := range opts.formats {
		path := filepath.Join(opts.outDir, entry.name+"."+format)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// pickExample runs the interactive gallery picker and returns the
// chosen name, or empty when the user quit without selecting.
func pickExample() (string, error) {
	p := tea.NewProgram(newExamplePicker(gallery))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	fm, ok := finalModel.(examplePickerModel)
	if !ok {
		return "", nil
	}
	return fm.Selected, nil
}

// =============================================================================
// Gallery Builders
// =============================================================================

// buildBezier draws a path alternating straight and curved legs with
// marked endpoints.
func buildBezier() (*tikz.Picture, error) {
	pic := tikz.NewPicture()
	if _, err := pic.Path(tikz.Pt(0, 0), []tikz.Segment{
		tikz.LineTo(tikz.Pt(1, 1)),
		tikz.CurveTo(tikz.Pt(3, 1), tikz.Pt(1.5, 2.5), tikz.Pt(2.5, -0.5)),
		tikz.CurveTo(tikz.Pt(5, 0), tikz.Pt(3.5, 2.5), tikz.Pt(4.5, 2)),
	}, "thick, blue"); err != nil {
		return nil, err
	}
	if _, err := pic.Circle(tikz.Pt(0, 0), 0.06, "fill=black"); err != nil {
		return nil, err
	}
	if _, err := pic.Circle(tikz.Pt(5, 0), 0.06, "fill=black"); err != nil {
		return nil, err
	}
	if _, err := pic.Node(tikz.Pt(0, -0.35), "start"); err != nil {
		return nil, err
	}
	if _, err := pic.Node(tikz.Pt(5, -0.35), "end"); err != nil {
		return nil, err
	}
	return pic, nil
}

// buildClipped fills the intersection of two circles by clipping a
// scope, then outlines the full circles on top.
func buildClipped() (*tikz.Picture, error) {
	pic := tikz.NewPicture()

	window, err := tikz.NewCircle(tikz.Pt(0.8, 0), 1)
	if err != nil {
		return nil, err
	}
	scope := pic.Scope()
	if _, err := scope.Clip(window); err != nil {
		return nil, err
	}
	if _, err := scope.Circle(tikz.Pt(0, 0), 1, "fill=cyan!40"); err != nil {
		return nil, err
	}

	if _, err := pic.Circle(tikz.Pt(0, 0), 1, "thick"); err != nil {
		return nil, err
	}
	if _, err := pic.Circle(tikz.Pt(0.8, 0), 1, "thick"); err != nil {
		return nil, err
	}
	return pic, nil
}

// buildFlowchart stacks styled stage nodes joined by arrows.
func buildFlowchart() (*tikz.Picture, error) {
	pic := tikz.NewPicture()
	if err := pic.DefineStyle("stage", "draw, rounded corners, fill=blue!10, minimum width=2.4cm"); err != nil {
		return nil, err
	}

	labels := []string{"read", "transform", "write"}
	for i, label := range labels {
		y := -1.4 * float64(i)
		if _, err := pic.Node(tikz.Pt(0, y), label, "stage"); err != nil {
			return nil, err
		}
		if i > 0 {
			arrow := []tikz.Point{tikz.Pt(0, y+1.1), tikz.Pt(0, y+0.3)}
			if _, err := pic.Line(arrow, "->, thick"); err != nil {
				return nil, err
			}
		}
	}
	pic.Center()
	return pic, nil
}

// buildOrbits draws a star, two elliptical orbits with planets, and a
// dotted comet arc.
func buildOrbits() (*tikz.Picture, error) {
	pic := tikz.NewPicture()
	if _, err := pic.Circle(tikz.Pt(0, 0), 0.3, "fill=yellow!80"); err != nil {
		return nil, err
	}
	for _, orbit := range []struct{ rx, ry float64 }{{1.6, 0.9}, {2.6, 1.5}} {
		if _, err := pic.Ellipse(tikz.Pt(0, 0), orbit.rx, orbit.ry, "dashed, gray"); err != nil {
			return nil, err
		}
	}
	if _, err := pic.Circle(tikz.Pt(1.6, 0), 0.1, "fill=blue!70"); err != nil {
		return nil, err
	}
	if _, err := pic.Circle(tikz.Pt(-2.6, 0), 0.12, "fill=red!70"); err != nil {
		return nil, err
	}
	if _, err := pic.ArcXY(tikz.Pt(2.2, 1.8), 150, 30, 1.2, 0.5, "dotted"); err != nil {
		return nil, err
	}
	return pic, nil
}

// buildSpiral rotates shrinking closed squares about the origin.
func buildSpiral() (*tikz.Picture, error) {
	pic := tikz.NewPicture()
	for i := 0; i < 10; i++ {
		size := 1.5 * (1 - 0.08*float64(i))
		square := []tikz.Point{
			tikz.Pt(-size, -size), tikz.Pt(size, -size),
			tikz.Pt(size, size), tikz.Pt(-size, size),
			tikz.Pt(-size, -size),
		}
		ln, err := pic.Line(square, "blue!60")
		if err != nil {
			return nil, err
		}
		if err := tikz.Rotate(ln, 15*float64(i)); err != nil {
			return nil, err
		}
	}
	return pic, nil
}

// buildTransforms lines up the same rectangle untouched, shifted,
// scaled, and rotated, labelled underneath.
func buildTransforms() (*tikz.Picture, error) {
	pic := tikz.NewPicture()

	if _, err := pic.Rectangle(tikz.Pt(0, 0), tikz.Pt(1.2, 0.8), "fill=gray!20"); err != nil {
		return nil, err
	}

	shifted, err := pic.Rectangle(tikz.Pt(0, 0), tikz.Pt(1.2, 0.8), "fill=blue!20")
	if err != nil {
		return nil, err
	}
	if err := tikz.Shift(shifted, 2, 0); err != nil {
		return nil, err
	}

	scaled, err := pic.Rectangle(tikz.Pt(0, 0), tikz.Pt(1.2, 0.8), "fill=red!20")
	if err != nil {
		return nil, err
	}
	if err := tikz.Scale(scaled, 0.5); err != nil {
		return nil, err
	}
	if err := tikz.Shift(scaled, 4, 0); err != nil {
		return nil, err
	}

	spun, err := pic.Line([]tikz.Point{tikz.Pt(-0.6, 0), tikz.Pt(0.6, 0)}, "green!50!black, very thick")
	if err != nil {
		return nil, err
	}
	if err := tikz.Rotate(spun, 30); err != nil {
		return nil, err
	}
	if err := tikz.Shift(spun, 6.2, 0.4); err != nil {
		return nil, err
	}

	for _, label := range []struct {
		at   tikz.Point
		text string
	}{
		{tikz.Pt(0.6, -0.4), "base"},
		{tikz.Pt(2.6, -0.4), "shift"},
		{tikz.Pt(4.3, -0.4), "scale"},
		{tikz.Pt(6.2, -0.4), "rotate"},
	} {
		if _, err := pic.Node(label.at, label.text); err != nil {
			return nil, err
		}
	}
	return pic, nil
}

// buildWaves plots three phase-shifted sine waves over a shared axis.
func buildWaves() (*tikz.Picture, error) {
	pic := tikz.NewPicture("x=0.6cm")
	for phase, color := range []string{"blue", "red", "green!60!black"} {
		points := make([]tikz.Point, 0, 25)
		for i := 0; i <= 24; i++ {
			x := float64(i) / 2
			points = append(points, tikz.Pt(x, math.Sin(x+2*math.Pi*float64(phase)/3)))
		}
		if _, err := pic.Plot(points, "smooth", color); err != nil {
			return nil, err
		}
	}
	if _, err := pic.Line([]tikz.Point{tikz.Pt(0, 0), tikz.Pt(12, 0)}, "gray, ->"); err != nil {
		return nil, err
	}
	return pic, nil
}
