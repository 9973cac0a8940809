// Package cli implements the toolstack command-line interface.
//
// The main commands are:
//   - detect: Observe a repository and compute its expanded configuration
//   - expand: Close a configuration over the registry's dependencies
//   - packages: Project a configuration into an ecosystem's pinned packages
//   - init: Interactively pick file types and tools
//   - info: Summarize the registry
//   - graph: Render the registry dependency graph
//   - cache: Manage the package-listing cache
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so library code can report progress.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/calliecameron/toolstack/pkg/buildinfo"
	"github.com/calliecameron/toolstack/pkg/cache"
)

const (
	// appName is the application name used for directories and display.
	appName = "toolstack"

	// defaultConfigFile is where init and detect persist the configuration.
	defaultConfigFile = ".toolstack.yml"

	// listingTTL bounds how long installed-package listings are reused.
	listingTTL = 15 * time.Minute
)

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
		Use:          "toolstack",
		Short:        "Toolstack computes a repository's development tooling configuration",
		Long:         `Toolstack maintains a curated registry of development tools and the file types they apply to. It detects which of them a repository uses, closes the set over installer and configuration dependencies, and projects the result into pinned package manifests.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.detectCommand())
	root.AddCommand(c.expandCommand())
	root.AddCommand(c.packagesCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the listing cache, falling back to a no-op cache when the
// cache directory is unavailable.
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

// cacheDir returns the cache directory using XDG standard (~/.cache/toolstack/).
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
