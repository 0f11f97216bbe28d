package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/regiolab/regio/pkg/cache"
	"github.com/regiolab/regio/pkg/pipeline"
)

// Cache backend names accepted in the config file and --cache-backend flag.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendMongo = "mongo"
	backendNone  = "none"
)

// Config holds user preferences loaded from the TOML config file.
// All fields are optional; zero values fall back to built-in defaults.
type Config struct {
	Cache    CacheConfig    `toml:"cache"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo", "none".
	// Empty means "file".
	Backend string `toml:"backend"`

	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig mirrors cache.RedisConfig with TOML tags.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig mirrors cache.MongoConfig with TOML tags.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// DefaultsConfig overrides the built-in generation defaults.
type DefaultsConfig struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Classes int    `toml:"classes"`
	Factor  int    `toml:"factor"`
	Skips   int    `toml:"skips"`
	Kernel  int    `toml:"kernel"`
	Scale   int    `toml:"scale"`
	Seed    uint64 `toml:"seed"`
}

// configPath returns the config file location using the XDG convention
// (~/.config/regio/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file if it exists. A missing file is not an
// error; it just produces a zero Config.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case "", backendFile, backendRedis, backendMongo, backendNone:
	default:
		return fmt.Errorf("unknown cache backend %q (must be file, redis, mongo, or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == backendRedis && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache backend is redis but cache.redis.addr is not set")
	}
	if c.Cache.Backend == backendMongo && c.Cache.Mongo.URI == "" {
		return fmt.Errorf("cache backend is mongo but cache.mongo.uri is not set")
	}
	return nil
}

// openCache creates the cache backend selected by the config.
func (c Config) openCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Cache.Redis.Addr,
			Password: c.Cache.Redis.Password,
			DB:       c.Cache.Redis.DB,
		})
	case backendMongo:
		return cache.NewMongoCache(ctx, cache.MongoConfig{
			URI:        c.Cache.Mongo.URI,
			Database:   c.Cache.Mongo.Database,
			Collection: c.Cache.Mongo.Collection,
		})
	default:
		dir := c.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	}
}

// applyDefaults copies configured defaults into unset pipeline options.
func (c Config) applyDefaults(opts *pipeline.Options) {
	if opts.Width == 0 {
		opts.Width = c.Defaults.Width
	}
	if opts.Height == 0 {
		opts.Height = c.Defaults.Height
	}
	if opts.Classes == 0 {
		opts.Classes = c.Defaults.Classes
	}
	if opts.Factor == 0 {
		opts.Factor = c.Defaults.Factor
	}
	if opts.Skips == 0 {
		opts.Skips = c.Defaults.Skips
	}
	if opts.Kernel == 0 {
		opts.Kernel = c.Defaults.Kernel
	}
	if opts.Scale == 0 {
		opts.Scale = c.Defaults.Scale
	}
	if opts.Seed == 0 {
		opts.Seed = c.Defaults.Seed
	}
}
