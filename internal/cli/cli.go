// Package cli implements the spheregrid command-line interface.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spheregrid/pkg/buildinfo"
	"github.com/matzehuels/spheregrid/pkg/cache"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "spheregrid"

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

	// cacheDir overrides the XDG cache directory when set.
	cacheDir string
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
		Use:          appName,
		Short:        "Spheregrid draws radial progression grids",
		Long:         `Spheregrid turns a declarative grid configuration (tiers, domains, nodes and paths) into a layered vector scene and renders it as SVG, PNG, PDF, JSON or Graphviz DOT.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.cacheDir, "cache-dir", "", "cache directory (default $XDG_CACHE_HOME/spheregrid)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the local file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(c.cachePath())
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cachePath returns the cache directory, $XDG_CACHE_HOME/spheregrid unless
// overridden with --cache-dir.
func (c *CLI) cachePath() string {
	if c.cacheDir != "" {
		return c.cacheDir
	}
	return filepath.Join(xdg.CacheHome, appName)
}

// =============================================================================
// Input Helpers
// =============================================================================

// loadConfig reads the configuration at path, or the built-in sample grid
// when path is empty.
func loadConfig(path string) (*grid.Config, error) {
	if path == "" {
		return grid.Default(), nil
	}
	return grid.Load(path)
}

// configArg returns the optional positional config path.
func configArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// configName labels a config source in output.
func configName(path string) string {
	if path == "" {
		return "built-in sample"
	}
	return path
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
