package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	specio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/render"
)

// renderCommand creates the render command: spec in, drawings out.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [spec.toml]",
		Short: "Render a building spec to SVG, PNG, PDF or JSON",
		Long: `Render a building spec to SVG, PNG, PDF or JSON.

This is 'layout' followed by 'visualize' in one step. The plan view draws the
outline, rooms, hall and stair with treads, the overall dimensions, room
labels, a north indicator and the scale and height notes. The adjacency view
(-t adjacency) draws which spaces share a wall.

PDF output needs rsvg-convert on PATH. PNG output uses it when available.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSpanFlags(cmd, opts); err != nil {
				return err
			}
			opts.Formats = parseFormats(formatsStr)
			opts.NoCache = noCache
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	renderFlags(cmd, &opts, &formatsStr)

	return cmd
}

// runRender loads the spec, runs the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string) error {
	spec, err := specio.ReadSpecFile(input)
	if err != nil {
		return fmt.Errorf("load spec: %w", err)
	}
	warnMissingRSVG(opts.Formats)

	runner, err := c.newRunner(opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, spec, opts)
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		vizType:   opts.VizType,
		input:     input,
		output:    output,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(paths)))

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Rooms, result.Stats.Area, result.CacheInfo.RenderHit)
	return nil
}

// warnMissingRSVG tells the user up front when a raster or PDF export will
// fall back or fail.
func warnMissingRSVG(formats []string) {
	if render.HasRSVG() {
		return
	}
	for _, f := range formats {
		switch f {
		case pipeline.FormatPDF:
			printWarning("rsvg-convert not found: PDF export is unavailable")
		case pipeline.FormatPNG:
			printWarning("rsvg-convert not found: PNG uses the built-in rasterizer, text is not drawn")
		}
	}
}
