// Package cli implements the vizier command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vizier/pkg/buildinfo"
	"github.com/matzehuels/vizier/pkg/cache"
	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "vizier"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// The config file is loaded in PersistentPreRunE so every command sees it;
// the logger is attached to the command context and retrievable with
// loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "vizier",
		Short:        "Vizier builds, lays out, and renders Graphviz graphs",
		Long:         `Vizier is a CLI for laying out and rendering Graphviz graphs: it reads DOT text, runs a layout engine (dot, neato, fdp, ...) and writes SVG, PNG, PDF and other formats, caching results by content hash.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			if cfg.Log.Level != "" {
				level, err := log.ParseLevel(cfg.Log.Level)
				if err != nil {
					return fmt.Errorf("config log level: %w", err)
				}
				c.Logger.SetLevel(level)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/vizier/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.enginesCommand())
	root.AddCommand(c.formatsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use, backed by the in-process
// engine and the configured cache backend.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	rt, err := engine.NewGraphviz(ctx)
	if err != nil {
		return nil, err
	}
	store, err := c.newCache(ctx)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	return pipeline.NewRunner(rt, store, nil, c.Logger), nil
}

// newCache builds the cache backend selected in the config. The file backend
// degrades to a null cache when no cache directory can be resolved.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	cfg := c.Config.Cache
	switch cfg.Backend {
	case cacheBackendNone:
		return cache.NewNullCache(), nil
	case "", cacheBackendFile:
		dir := cfg.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	case cacheBackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case cacheBackendMongo:
		return cache.NewMongoCache(ctx, cache.MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/vizier/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
