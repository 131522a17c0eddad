package sink

import (
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	zoom    float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithZoom sets the raster zoom factor (default 2.0 for 2x resolution).
func WithZoom(z float64) PNGOption {
	return func(r *pngRenderer) { r.zoom = z }
}

// RenderPNG renders the layout as PNG via SVG conversion.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{zoom: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	svg, err := RenderSVG(l, r.svgOpts...)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, r.zoom)
}
