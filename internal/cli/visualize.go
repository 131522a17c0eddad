package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "visualize [plan.layout.json]",
		Short: "Render a computed layout document",
		Long: `Render a computed layout document.

The visualize command takes a layout document (produced by 'layout' or
'render -f json') and renders it to SVG, PNG, or PDF. The document is
verified again on load, so hand edits that break the tiling are rejected.

Use 'render' as a shortcut to go directly from a spec to drawings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSpanFlags(cmd, opts); err != nil {
				return err
			}
			opts.Formats = parseFormats(formatsStr)
			opts.NoCache = noCache
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	renderFlags(cmd, &opts, &formatsStr)

	return cmd
}

// runVisualize loads the layout and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string) error {
	l, err := layout.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	warnMissingRSVG(opts.Formats)

	runner, err := c.newRunner(opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return fmt.Errorf("visualize: %w", err)
	}

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		vizType:   opts.VizType,
		input:     input,
		output:    output,
	})
	if err != nil {
		return err
	}

	printSuccess("Visualization complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(l.Plan.Rooms), l.Plan.Footprint.Area(), cacheHit)
	return nil
}
