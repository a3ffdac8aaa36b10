package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saltsmart/tikzgo/pkg/config"
)

// newCacheCmd creates the cache management command group. All
// subcommands act on the configured backend, so `cache clear` against
// a redis config clears redis, not the local directory.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
	}

	cmd.AddCommand(newCacheStatsCmd())
	cmd.AddCommand(newCacheClearCmd())
	cmd.AddCommand(newCachePathCmd())

	return cmd
}

// newCacheStatsCmd creates the "cache stats" subcommand.
func newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show artifact cache usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheStats(cmd.Context())
		},
	}
}

func runCacheStats(ctx context.Context) error {
	cfg := configFromContext(ctx)

	c, err := buildCache(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer c.Close()

	stats, err := c.Stats(ctx)
	if err != nil {
		return err
	}

	printKeyValue("backend", cfg.Cache.Backend)
	printKeyValue("entries", StyleNumber.Render(strconv.Itoa(stats.Entries)))
	printKeyValue("size", formatBytes(int(stats.Bytes)))
	return nil
}

// newCacheClearCmd creates the "cache clear" subcommand.
func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheClear(cmd.Context())
		},
	}
}

func runCacheClear(ctx context.Context) error {
	cfg := configFromContext(ctx)

	c, err := buildCache(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer c.Close()

	entries := -1
	if stats, err := c.Stats(ctx); err == nil {
		entries = stats.Entries
	}

	if err := c.Clear(ctx); err != nil {
		return err
	}

	if entries >= 0 {
		printSuccess("Cleared %d cached entries", entries)
	} else {
		printSuccess("Cache cleared")
	}
	return nil
}

// newCachePathCmd creates the "cache path" subcommand.
func newCachePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCachePath(cmd.Context())
		},
	}
}

func runCachePath(ctx context.Context) error {
	cfg := configFromContext(ctx)
	if cfg.Cache.Backend != config.CacheFile {
		return fmt.Errorf("cache backend %q has no local path", cfg.Cache.Backend)
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return fmt.Errorf("get cache dir: %w", err)
		}
		dir = d
	}
	fmt.Println(dir)
	return nil
}
