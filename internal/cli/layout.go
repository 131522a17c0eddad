package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	specio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// layoutCommand creates the layout command for computing layout documents.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		noCache  bool
		standoff float64
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [spec.toml]",
		Short: "Compute a floor plan layout from a building spec",
		Long: `Compute a floor plan layout from a building spec.

The layout command reads a building spec (TOML, YAML or JSON, by extension),
places every room, the hall and the stair, verifies that the spaces tile the
footprint, and writes the result with its dimension lines, labels and treads
to a layout document (same format as 'render -f json').

Render the document with 'visualize'. Results are cached locally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("standoff") {
				opts.Standoff = &standoff
			}
			opts.NoCache = noCache
			return c.runLayout(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Float64Var(&standoff, "standoff", 1.5, "distance in feet between the outline and the dimension lines")

	return cmd
}

// runLayout loads the spec, computes the layout, and writes the document.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string) error {
	spec, err := specio.ReadSpecFile(input)
	if err != nil {
		return fmt.Errorf("load spec: %w", err)
	}

	runner, err := c.newRunner(opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	l, cacheHit, err := runner.ComputeWithCacheInfo(ctx, spec, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	outputPath := layoutPath(output, input)
	if err := layout.WriteFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Plan.Rooms), l.Plan.Footprint.Area(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" visualize "+outputPath)

	return nil
}
