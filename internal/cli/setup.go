package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/saltsmart/tikzgo/pkg/cache"
	"github.com/saltsmart/tikzgo/pkg/config"
	"github.com/saltsmart/tikzgo/pkg/pipeline"
	"github.com/saltsmart/tikzgo/pkg/store"
)

// withConfig returns a new context with the loaded configuration
// attached. The root command does this once in PersistentPreRunE.
func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the configuration from ctx, falling back
// to defaults so commands work even when called outside the root
// command (as in tests).
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// pipelineOptions translates configuration into the base pipeline
// option set. Command flags override individual fields on top.
func pipelineOptions(cfg config.Config) pipeline.Options {
	return pipeline.Options{
		Preamble: cfg.Preamble,
		Engine:   cfg.Engine,
		BuildDir: cfg.BuildDir,
		DPI:      cfg.PNG.DPI,
		NoCrop:   !cfg.PNG.Crop,
		MaxWidth: cfg.PNG.MaxWidth,
	}
}

// buildCache creates the artifact cache for the configured backend.
// An unusable default cache directory degrades to no caching rather
// than failing the command.
func buildCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Backend == config.CacheOff {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.Cache.Redis.Addr, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB)
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	}
}

// buildStore creates the document store for the configured backend.
func buildStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreMongo:
		return store.NewMongoStore(ctx, cfg.Store.Mongo.URI, cfg.Store.Mongo.Database)
	default:
		return store.NewFileStore(cfg.Store.Dir)
	}
}

// buildRunner creates a pipeline runner over the configured cache.
// A configured cache scope namespaces keys so projects sharing one
// backend stay isolated.
func buildRunner(ctx context.Context, cfg config.Config, noCache bool, logger *log.Logger) (*pipeline.Runner, error) {
	c, err := buildCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if cfg.Cache.Scope != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.Scope+":")
	}
	return pipeline.NewRunner(c, keyer, logger), nil
}
