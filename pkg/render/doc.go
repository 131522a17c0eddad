// Package render converts floor-plan drawings between output formats.
//
// # Overview
//
// Drawings are produced as SVG by the [sink] subpackage (the measured plan)
// and the [adjacency] subpackage (a room graph). This package turns that SVG
// into the other artifact formats:
//
//	svg, err := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg). When the tool
// is missing, [ToPNG] falls back to a pure-Go rasterizer built on oksvg and
// rasterx. The fallback draws shapes and lines but no text or markers, so
// install librsvg for publication-quality output. PDF has no fallback.
//
// [sink]: github.com/matzehuels/floorplan/pkg/render/sink
// [adjacency]: github.com/matzehuels/floorplan/pkg/render/adjacency
package render
