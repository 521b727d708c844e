package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/skilltree/pkg/buildinfo"
	"github.com/matzehuels/skilltree/pkg/cache"
	skillio "github.com/matzehuels/skilltree/pkg/io"
	"github.com/matzehuels/skilltree/pkg/library"
	"github.com/matzehuels/skilltree/pkg/observability"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "skilltree"

	// cacheTTL bounds how long rendered Graphviz output is reused.
	cacheTTL = 7 * 24 * time.Hour
)

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

	// catalogPath overrides the embedded skill library (--library).
	catalogPath string
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
		Short:        "Skilltree plans and tracks learning as dependency-linked skill trees",
		Long:         `Skilltree builds skill trees from templates and a skill library, tracks progress, arranges skills by their prerequisites, renders trees as cards, hexagon branches or Graphviz diagrams, and serves read-only share links.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetEditorHooks(newLogHooks(c.Logger))
			observability.SetRenderHooks(newLogHooks(c.Logger))
			observability.SetServerHooks(newLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.catalogPath, "library", "", "skill library TOML (default: built-in)")

	root.AddCommand(c.newCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.libraryCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache
// =============================================================================

// newCache returns the render cache, or a null cache when disabled or when
// no cache directory is available.
func newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		loggerFromContext(ctx).Debugf("Render cache disabled: %v", err)
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using XDG standard (~/.cache/skilltree/).
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

// =============================================================================
// Shared Helpers
// =============================================================================

// catalog returns the skill library selected by --library.
func (c *CLI) catalog() (*library.Catalog, error) {
	if c.catalogPath == "" {
		return library.Default(), nil
	}
	cat, err := library.Load(c.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	return cat, nil
}

// loadTree imports a SkillTree JSON file.
func loadTree(path string) (*tree.Tree, error) {
	return skillio.ImportJSON(path)
}

// saveTree exports t to path, or to stdout when path is "-".
func saveTree(t *tree.Tree, path string) error {
	if path == "-" {
		return skillio.WriteJSON(t, os.Stdout)
	}
	return skillio.ExportJSON(t, path)
}

// basePath strips a known output extension from output, or derives the base
// from input when output is empty.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}
