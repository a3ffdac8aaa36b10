// Package config loads tool configuration from a TOML file.
//
// Configuration is optional: every field has a default, and a missing
// config file simply yields [Default]. Values decode over the defaults,
// so a partial file overrides only what it names:
//
//	engine = "lualatex"
//	preamble = ['\usepackage{pgfplots}']
//
//	[png]
//	dpi = 600
//
//	[cache]
//	backend = "redis"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[store]
//	backend = "mongo"
//
//	[store.mongo]
//	uri = "mongodb://localhost:27017"
//
// The file lives at ~/.config/tikzgo/config.toml unless an explicit
// path is given (the --config flag).
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/saltsmart/tikzgo/pkg/errors"
	"github.com/saltsmart/tikzgo/pkg/latex"
)

// Cache backend names.
const (
	CacheOff   = "off"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Store backend names.
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

var validCacheBackends = map[string]bool{
	CacheOff:   true,
	CacheFile:  true,
	CacheRedis: true,
}

var validStoreBackends = map[string]bool{
	StoreFile:   true,
	StoreMemory: true,
	StoreMongo:  true,
}

// Config is the full tool configuration.
type Config struct {
	// Engine is the TeX engine latexmk drives.
	Engine string `toml:"engine"`

	// BuildDir reuses a fixed latexmk build directory across runs.
	// Empty means throwaway scratch directories.
	BuildDir string `toml:"build_dir"`

	// Preamble lines are added to every generated document, after the
	// TikZ setup (\usepackage lines and similar).
	Preamble []string `toml:"preamble"`

	PNG    PNGConfig    `toml:"png"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// PNGConfig controls PDF rasterization.
type PNGConfig struct {
	DPI      int  `toml:"dpi"`
	Crop     bool `toml:"crop"`
	MaxWidth int  `toml:"max_width"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	// Backend is one of off, file, redis.
	Backend string `toml:"backend"`

	// Dir overrides the file cache location.
	Dir string `toml:"dir"`

	// Scope namespaces cache keys, isolating projects that share a
	// backend. Empty means no prefix.
	Scope string `toml:"scope"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds connection settings for the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreConfig selects and configures document persistence.
type StoreConfig struct {
	// Backend is one of file, memory, mongo.
	Backend string `toml:"backend"`

	// Dir overrides the file store location.
	Dir string `toml:"dir"`

	Mongo MongoConfig `toml:"mongo"`
}

// MongoConfig holds connection settings for the mongo store backend.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Engine: latex.DefaultEngine,
		PNG: PNGConfig{
			DPI:  latex.DefaultDPI,
			Crop: true,
		},
		Cache: CacheConfig{
			Backend: CacheFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Store: StoreConfig{
			Backend: StoreFile,
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017", Database: "tikzgo"},
		},
		Server: ServerConfig{Addr: ":8264"},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tikzgo", "config.toml"), nil
}

// Load reads configuration from path. An empty path means the default
// location, where a missing file is not an error; an explicit path
// must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints after decoding.
func (c *Config) Validate() error {
	if err := latex.ValidateEngine(c.Engine); err != nil {
		return err
	}
	if !validCacheBackends[c.Cache.Backend] {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid cache backend: %q (must be one of: off, file, redis)", c.Cache.Backend)
	}
	if !validStoreBackends[c.Store.Backend] {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid store backend: %q (must be one of: file, memory, mongo)", c.Store.Backend)
	}
	if c.PNG.DPI <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "png dpi must be positive, got %d", c.PNG.DPI)
	}
	if c.PNG.MaxWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "png max_width must not be negative, got %d", c.PNG.MaxWidth)
	}
	if c.Cache.Redis.DB < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "redis db must not be negative, got %d", c.Cache.Redis.DB)
	}
	return nil
}
