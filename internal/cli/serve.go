package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saltsmart/tikzgo/pkg/preview"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address override, empty means config value
	noCache bool   // disable the artifact cache
}

// newServeCmd creates the serve command running the preview server.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local preview server",
		Long: `Serve starts a local web server for browsing saved documents and
their compiled artifacts. POST TikZ source to /documents to store and
compile it; artifact URLs recompile on demand, backed by the cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runServe wires the configured store, cache, and pipeline into the
// preview server and blocks until the context is cancelled.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	st, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	runner, err := buildRunner(ctx, cfg, opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	addr := cfg.Server.Addr
	if opts.addr != "" {
		addr = opts.addr
	}

	srv, err := preview.New(preview.Options{
		Addr:     addr,
		Store:    st,
		Runner:   runner,
		Pipeline: pipelineOptions(cfg),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if opts.noCache {
		printWarning("Artifact cache disabled; every request recompiles")
	}
	printInfo("Preview server listening on %s", StyleLink.Render(displayURL(addr)))
	printDetail("store: %s · cache: %s · engine: %s", cfg.Store.Backend, cfg.Cache.Backend, cfg.Engine)
	printDetail("Press Ctrl-C to stop")
	return srv.Run(ctx)
}

// displayURL turns a listen address into a browsable URL.
func displayURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
