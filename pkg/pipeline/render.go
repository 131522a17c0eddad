package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/render/adjacency"
	"github.com/matzehuels/floorplan/pkg/render/sink"
	"github.com/matzehuels/floorplan/pkg/render/styles"
)

// Render generates output artifacts in the requested formats. Options are
// expected to have passed ValidateForRender.
func Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	if l.Plan == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout has no plan")
	}
	if opts.IsAdjacency() {
		return renderAdjacency(ctx, l, opts)
	}
	return renderPlan(l, opts)
}

// renderPlan generates floor plan drawings.
func renderPlan(l layout.Layout, opts Options) (map[string][]byte, error) {
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte

		switch format {
		case FormatSVG:
			data, err = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithZoom(opts.Zoom))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported plan format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderAdjacency generates the room adjacency diagram. The JSON artifact is
// the layout document, as for plans, since the graph is derived from it.
func renderAdjacency(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	dot := adjacency.ToDOT(l.Plan)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = adjacency.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = adjacency.RenderPNG(ctx, dot, opts.Zoom)
		case FormatPDF:
			data, err = adjacency.RenderPDF(ctx, dot)
		case FormatJSON:
			data, err = layout.Marshal(l)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported adjacency format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) ([]sink.SVGOption, error) {
	st, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	return []sink.SVGOption{
		sink.WithScale(geom.Scale(scale)),
		sink.WithStyle(st),
		sink.WithNorth(!opts.HideNorth),
		sink.WithNotes(!opts.HideNotes),
	}, nil
}

// RenderFromLayoutData renders output from a serialized layout document.
// This is what `visualize` uses to re-render an exported layout.
func RenderFromLayoutData(ctx context.Context, data []byte, opts Options) (map[string][]byte, error) {
	l, err := layout.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	return Render(ctx, l, opts)
}
