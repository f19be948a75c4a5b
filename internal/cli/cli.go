package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhalvorsen/transitmap/pkg/buildinfo"
	"github.com/mhalvorsen/transitmap/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "transitmap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
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
		Use:          "transitmap",
		Short:        "Transitmap models and edits transit network graphs",
		Long:         `Transitmap is a CLI tool for loading transit networks from CSV datasets, querying connectivity and ridership, applying structural edits, and exporting the resulting map as JSON, DOT, or SVG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.stationsCommand())
	root.AddCommand(c.linesCommand())
	root.AddCommand(c.neighboursCommand())
	root.AddCommand(c.adjacentCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.spreadCommand())
	root.AddCommand(c.addStationCommand())
	root.AddCommand(c.removeStationCommand())
	root.AddCommand(c.addLineCommand())
	root.AddCommand(c.removeLineCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache returns the dataset snapshot cache, or a no-op cache when
// caching is disabled or no cache directory can be determined.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/transitmap/).
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
