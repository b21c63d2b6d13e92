package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/render"
)

// Cache backends selectable via the [cache] config section.
const (
	cacheBackendNone  = "none"
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendMongo = "mongo"
)

// Config holds the optional configuration file contents. All fields are
// defaults: command-line flags override them per invocation.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Log    LogConfig    `toml:"log"`
}

// RenderConfig sets default layout and output choices for render commands.
type RenderConfig struct {
	// Engine is the default layout engine (dot, neato, fdp, ...).
	Engine string `toml:"engine"`

	// Formats are the default output formats (svg, png, pdf, ...).
	Formats []string `toml:"formats"`
}

// CacheConfig selects and configures the render cache backend.
type CacheConfig struct {
	// Backend is one of none, file (default), redis, mongo.
	Backend string `toml:"backend"`

	// Dir is the file backend's directory. Empty means the XDG cache dir.
	Dir string `toml:"dir"`

	// Redis backend settings.
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	// Mongo backend settings.
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// LogConfig sets the default log level.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// LoadConfig reads the TOML config file at path. An empty path means the
// default location (~/.config/vizier/config.toml); a missing file at the
// default location is not an error and yields a zero Config. A missing file
// at an explicit path is reported.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, fmt.Errorf("config file %s does not exist", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects values that would otherwise fail deep inside a command.
func (c Config) validate() error {
	if c.Render.Engine != "" {
		if _, err := engine.ParseEngine(c.Render.Engine); err != nil {
			return err
		}
	}
	for _, f := range c.Render.Formats {
		if _, err := render.ParseFormat(f); err != nil {
			return err
		}
	}
	switch c.Cache.Backend {
	case "", cacheBackendNone, cacheBackendFile, cacheBackendRedis, cacheBackendMongo:
	default:
		return fmt.Errorf("unknown cache backend %q (must be none, file, redis, or mongo)", c.Cache.Backend)
	}
	if c.Cache.Backend == cacheBackendRedis && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache backend redis requires redis_addr")
	}
	if c.Cache.Backend == cacheBackendMongo && c.Cache.MongoURI == "" {
		return fmt.Errorf("cache backend mongo requires mongo_uri")
	}
	return nil
}

// defaultConfigPath returns the config location using the XDG standard
// (~/.config/vizier/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
