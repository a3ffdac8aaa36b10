package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/saltsmart/tikzgo/pkg/buildinfo"
	"github.com/saltsmart/tikzgo/pkg/config"
)

// Execute runs the tikzgo CLI and returns an error if any command
// fails. The context carries cancellation from the caller (typically
// signal handling in main), so a Ctrl-C aborts in-flight compiles.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "tikzgo",
		Short: "tikzgo renders TikZ drawings to PDF and PNG",
		Long: `tikzgo compiles TikZ markup into PDF and PNG artifacts, lays out graph
descriptions as TikZ pictures, and serves a local document preview.
Artifacts are cached by content hash, so unchanged drawings never
re-run the TeX toolchain.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/tikzgo/config.toml)")

	root.AddCommand(newCompileCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newExamplesCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newSaveCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root
}
