// Package cli implements the floorplan command-line interface.
//
// # Commands
//
//   - example: print the reference building spec
//   - layout: compute a layout document from a building spec
//   - render: building spec straight to SVG, PNG, PDF or JSON
//   - visualize: render a layout document produced by layout
//   - serve: run the HTTP API
//   - cache: manage the local artifact cache
//   - completion: shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "floorplan"

	// envRedisAddr selects the Redis cache for serve.
	envRedisAddr = "FLOORPLAN_REDIS_ADDR"

	// redisKeyPrefix scopes keys in a shared Redis.
	redisKeyPrefix = "floorplan:v1:"
)

// Log levels accepted by New and SetLogLevel.
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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level every pipeline,
// cache and server event is logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.NewLogHooks(c.Logger).Register()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Floorplan lays out and draws annotated building floor plans",
		Long:          `Floorplan turns a declarative building spec (rooms, hall, stair) into a verified floor plan and draws it as a dimensioned architectural figure.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
	}

	root.SetVersionTemplate(buildinfo.Template())
	// cobra adds "completion [bash|zsh|fish|powershell]" on its own.
	root.CompletionOptions.HiddenDefaultCmd = false

	// Register all subcommands
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

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

// newServerCache picks Redis when an address is configured and the local
// file cache otherwise.
func (c *CLI) newServerCache(ctx context.Context, redisAddr string) (cache.Cache, cache.Keyer, error) {
	if redisAddr == "" {
		fc, err := newCache(false)
		return fc, nil, err
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: redisAddr})
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Info("using redis cache", "addr", redisAddr)
	return rc, cache.NewScopedKeyer(cache.NewDefaultKeyer(), redisKeyPrefix), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/floorplan/).
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
// Options Helpers
// =============================================================================

// renderFlags binds the render options shared by render and visualize.
func renderFlags(cmd *cobra.Command, opts *pipeline.Options, formats *string) {
	opts.SetRenderDefaults()
	cmd.Flags().StringVarP(formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", opts.VizType, "visualization type: plan (default), adjacency")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: blueprint (default), print")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "drawing scale in pixels per foot")
	cmd.Flags().Float64Var(&opts.Zoom, "zoom", opts.Zoom, "raster zoom for png output")
	cmd.Flags().BoolVar(&opts.HideNorth, "no-north", false, "omit the north indicator")
	cmd.Flags().BoolVar(&opts.HideNotes, "no-notes", false, "omit the scale and height notes")
}

// checkSpanFlags rejects an explicit --scale or --zoom that is not > 0.
// The pipeline reads a zero span as unset, so it must be caught here.
func checkSpanFlags(cmd *cobra.Command, opts pipeline.Options) error {
	if cmd.Flags().Changed("scale") {
		if err := errors.ValidateSpan("scale", opts.Scale); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("zoom") {
		if err := errors.ValidateSpan("zoom", opts.Zoom); err != nil {
			return err
		}
	}
	return nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if f := pipeline.ParseFormats(s); len(f) > 0 {
		return f
	}
	return []string{pipeline.FormatSVG}
}
