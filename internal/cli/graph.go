package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saltsmart/tikzgo/pkg/graph"
	pkgio "github.com/saltsmart/tikzgo/pkg/io"
	"github.com/saltsmart/tikzgo/pkg/pipeline"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output      string   // output file, empty writes tex to stdout
	formats     []string // artifact formats: tex, pdf, png
	direction   string   // layout direction override: TB, LR, BT, RL
	scale       float64  // layout inches to TikZ units factor
	nodeOptions string   // default node style
	edgeOptions string   // default edge style
	standalone  bool     // emit the tex artifact as a complete document
	noCache     bool     // disable the artifact cache for this run
}

// newGraphCmd creates the graph command. It lays out a node-link graph
// with the embedded Graphviz dot engine and emits it as a TikZ picture,
// optionally compiled to PDF or PNG.
func newGraphCmd() *cobra.Command {
	var formatsStr string
	opts := graphOpts{scale: 1}

	cmd := &cobra.Command{
		Use:   "graph <graph.json>",
		Short: "Turn a graph JSON file into a TikZ picture",
		Long: `Graph reads a node-link graph from JSON, computes positions with the
embedded Graphviz dot engine, and emits the result as TikZ node and
edge statements. Without --output the TikZ code goes to stdout; with
--format pdf or png the picture is compiled like the compile command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr == "" {
				opts.formats = []string{pipeline.FormatTex}
			} else {
				opts.formats = parseFormats(formatsStr)
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.direction != "" && !graph.ValidDirections[opts.direction] {
				return fmt.Errorf("invalid direction: %s (must be 'TB', 'LR', 'BT', or 'RL')", opts.direction)
			}
			return runGraph(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout for tex, input basename otherwise)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): tex (default), pdf, png (comma-separated)")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "layout direction: TB (default), LR, BT, RL")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "layout inches to TikZ units factor")
	cmd.Flags().StringVar(&opts.nodeOptions, "node-options", "", "default node style (default \""+graph.DefaultNodeOptions+"\")")
	cmd.Flags().StringVar(&opts.edgeOptions, "edge-options", "", "default edge style (default \""+graph.DefaultEdgeOptions+"\")")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "emit the tex artifact as a complete document")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runGraph imports the graph, lays it out, converts it to a picture,
// and writes the requested artifacts.
func runGraph(ctx context.Context, input string, opts *graphOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	g, err := pkgio.ImportGraph(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "nodes", len(g.Nodes), "edges", len(g.Edges))

	prog := newProgress(logger)
	lay, err := graph.ComputeLayout(ctx, g, graph.LayoutOptions{
		Direction: opts.direction,
		Scale:     opts.scale,
	})
	if err != nil {
		return err
	}

	pic, err := graph.ToPicture(g, lay, graph.PictureOptions{
		NodeOptions: opts.nodeOptions,
		EdgeOptions: opts.edgeOptions,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d nodes, %d edges", len(g.Nodes), len(g.Edges)))

	// Plain tex with no target file goes to stdout, pipe-friendly.
	if opts.output == "" && len(opts.formats) == 1 && opts.formats[0] == pipeline.FormatTex {
		if opts.standalone {
			return pkgio.WriteDocument(pic, cfg.Preamble, os.Stdout)
		}
		return pkgio.WriteTex(pic, os.Stdout)
	}

	popts := pipelineOptions(cfg)
	popts.Formats = opts.formats
	popts.Standalone = opts.standalone

	runner, err := buildRunner(ctx, cfg, opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	sp := newSpinnerWithContext(ctx, "Rendering "+filepath.Base(input)+"...")
	sp.Start()

	result, err := runner.Execute(ctx, pic, popts)
	if err != nil {
		sp.Stop()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return reportPipelineError(err)
	}

	sp.StopWithSuccess(fmt.Sprintf("Rendered %s", filepath.Base(input)))
	printPipelineStats(result)

	return writeArtifacts(result, input, opts.output, opts.formats)
}
