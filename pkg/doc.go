// Package pkg provides the core libraries for floorplan.
//
// # Overview
//
// Floorplan turns a declarative building spec (a rectangular storey, a 2×2
// grid of rooms split by a central hall, and a straight stair inside the
// hall) into verified, dimensioned floor plan drawings. The pkg directory is
// organized into three areas:
//
//  1. Geometry - units, primitives, layout and annotation
//  2. Rendering - SVG, PNG, PDF and adjacency graph output
//  3. Orchestration - spec I/O, caching, the pipeline and its hooks
//
// # Architecture
//
// The typical data flow:
//
//	Building spec (TOML / YAML / JSON)
//	         ↓
//	    [io] package (decode, strict)
//	         ↓
//	    [plan] package (place rooms, hall, stair; verify the tiling)
//	         ↓
//	    [annotate] package (dimension lines, labels, treads)
//	         ↓
//	    [layout] package (the complete drawing geometry)
//	         ↓
//	    [render/sink] or [render/adjacency]
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/floorplan/pkg/layout"
//	    "github.com/matzehuels/floorplan/pkg/plan"
//	    "github.com/matzehuels/floorplan/pkg/render/sink"
//	)
//
//	l, err := layout.Compute(plan.Reference())
//	if err != nil {
//	    return err
//	}
//	svg, err := sink.RenderSVG(l)
//
// # Main Packages
//
// ## Geometry
//
// [geom] - Feet-based lengths, points, rectangles and lines, plus formatting
// of lengths as feet and inches.
//
// [plan] - Building spec types, the layout engine and the tiling check.
// Every failure is a configuration error from [errors].
//
// [annotate] - Overall dimension lines, room and hall labels, the stair
// caption and the tread subdivision.
//
// [layout] - A placed plan plus its annotations, serialized as the versioned
// JSON layout document.
//
// ## Rendering
//
// [render/sink] - The architectural drawing as SVG, PNG, PDF or JSON.
//
// [render/styles] - Visual styles (blueprint, print).
//
// [render/adjacency] - Which spaces share a wall, drawn with Graphviz.
//
// [render] - SVG to PDF/PNG conversion.
//
// ## Orchestration
//
// [pipeline] - Layout and render with caching, used by the CLI and the API.
//
// [cache] - File, Redis and null caches plus key derivation.
//
// [observability] - Pipeline, cache and server hooks.
//
// [io] - Reading and writing building specs.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/plan/...     # Specific package
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/geom
// [plan]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/plan
// [annotate]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/annotate
// [layout]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/layout
// [errors]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/errors
// [render]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/render/styles
// [render/adjacency]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/render/adjacency
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/observability
// [io]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/io
package pkg
