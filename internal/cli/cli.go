// Package cli implements the regio command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/regiolab/regio/pkg/buildinfo"
	"github.com/regiolab/regio/pkg/cache"
	"github.com/regiolab/regio/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "regio"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// config is loaded lazily on first use so that commands which don't
	// need it (completion, cache path) never touch the filesystem.
	config       Config
	configLoaded bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "regio",
		Short:        "Regio generates random region decompositions",
		Long:         `Regio grows labeled regions from random seeds on a toroidal grid and renders the resulting decomposition as PNG, SVG, or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig loads the config file once and memoizes it.
func (c *CLI) loadConfig() (Config, error) {
	if c.configLoaded {
		return c.config, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return Config{}, err
	}
	c.config = cfg
	c.configLoaded = true
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use, using the cache backend
// from the config file unless noCache disables caching entirely.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	backend, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(backend, nil, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.openCache(ctx)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/regio/).
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

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPNG}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// outputPath derives the file path for one format from the output base.
// A base that already carries the format's extension is used verbatim.
func outputPath(base, format string) string {
	if base == "" {
		base = "decomposition"
	}
	ext := filepath.Ext(base)
	if strings.TrimPrefix(ext, ".") == format {
		return base
	}
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}
