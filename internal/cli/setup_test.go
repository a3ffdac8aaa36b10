package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/saltsmart/tikzgo/pkg/cache"
	"github.com/saltsmart/tikzgo/pkg/config"
	"github.com/saltsmart/tikzgo/pkg/latex"
)

func TestConfigContextRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Engine = latex.EngineLuaLaTeX

	ctx := withConfig(context.Background(), cfg)

	got := configFromContext(ctx)
	if got.Engine != latex.EngineLuaLaTeX {
		t.Errorf("Engine = %q, want %q", got.Engine, latex.EngineLuaLaTeX)
	}
}

func TestConfigFromContextDefaults(t *testing.T) {
	got := configFromContext(context.Background())
	want := config.Default()

	if got.Engine != want.Engine {
		t.Errorf("Engine = %q, want default %q", got.Engine, want.Engine)
	}
	if got.Cache.Backend != want.Cache.Backend {
		t.Errorf("Cache.Backend = %q, want default %q", got.Cache.Backend, want.Cache.Backend)
	}
	if got.Store.Backend != want.Store.Backend {
		t.Errorf("Store.Backend = %q, want default %q", got.Store.Backend, want.Store.Backend)
	}
}

func TestPipelineOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Engine = latex.EngineLuaLaTeX
	cfg.BuildDir = "/tmp/builds"
	cfg.Preamble = []string{`\usepackage{pgfplots}`}
	cfg.PNG.DPI = 600
	cfg.PNG.Crop = false
	cfg.PNG.MaxWidth = 900

	got := pipelineOptions(cfg)

	if got.Engine != latex.EngineLuaLaTeX {
		t.Errorf("Engine = %q, want %q", got.Engine, latex.EngineLuaLaTeX)
	}
	if got.BuildDir != "/tmp/builds" {
		t.Errorf("BuildDir = %q, want /tmp/builds", got.BuildDir)
	}
	if got.DPI != 600 {
		t.Errorf("DPI = %d, want 600", got.DPI)
	}
	if !got.NoCrop {
		t.Error("NoCrop should be true when config crop is off")
	}
	if got.MaxWidth != 900 {
		t.Errorf("MaxWidth = %d, want 900", got.MaxWidth)
	}
	if len(got.Preamble) != 1 {
		t.Errorf("Preamble = %v, want one line", got.Preamble)
	}
}

func TestBuildCacheOffBackend(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Cache.Backend = config.CacheOff

	c, err := buildCache(ctx, cfg, false)
	if err != nil {
		t.Fatalf("buildCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("off backend should never store entries")
	}
}

func TestBuildCacheNoCacheFlag(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Cache.Dir = t.TempDir()

	c, err := buildCache(ctx, cfg, true)
	if err != nil {
		t.Fatalf("buildCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("no-cache flag should force the null cache")
	}
}

func TestBuildCacheFileBackend(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Cache.Dir = t.TempDir()

	c, err := buildCache(ctx, cfg, false)
	if err != nil {
		t.Fatalf("buildCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || string(data) != "v" {
		t.Errorf("Get = %q, %v; want %q, true", data, ok, "v")
	}
}

func TestBuildStoreMemory(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Store.Backend = config.StoreMemory

	st, err := buildStore(ctx, cfg)
	if err != nil {
		t.Fatalf("buildStore: %v", err)
	}
	defer st.Close()

	docs, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("fresh store has %d documents, want 0", len(docs))
	}
}

func TestBuildStoreFile(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Store.Dir = t.TempDir()

	st, err := buildStore(ctx, cfg)
	if err != nil {
		t.Fatalf("buildStore: %v", err)
	}
	defer st.Close()

	if _, err := st.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
}

func TestBuildRunner(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Dir = t.TempDir()

	r, err := buildRunner(context.Background(), cfg, false, nil)
	if err != nil {
		t.Fatalf("buildRunner: %v", err)
	}
	defer r.Close()

	if r.Cache == nil || r.Keyer == nil {
		t.Error("runner missing cache or keyer")
	}
}

func TestBuildRunnerScopedKeys(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Dir = t.TempDir()
	cfg.Cache.Scope = "paper"

	r, err := buildRunner(context.Background(), cfg, false, nil)
	if err != nil {
		t.Fatalf("buildRunner: %v", err)
	}
	defer r.Close()

	key := r.Keyer.TexKey("abc", cache.TexKeyOpts{})
	if !strings.HasPrefix(key, "paper:") {
		t.Errorf("scoped key = %q, want paper: prefix", key)
	}
}
