// Package sink draws a computed [layout.Layout] into output artifacts.
//
// [RenderSVG] is the primary sink. It scales every feet coordinate through
// [geom.Scale] and emits, in order: the building outline, the rooms and the
// hall, the stair, the dimension lines with their arrowheads and labels, the
// space labels, the stair treads, then the north indicator and the scale and
// height notes. [RenderPNG] and [RenderPDF] convert that SVG with
// [render.ToPNG] and [render.ToPDF]; [RenderJSON] writes the layout document.
//
//	svg, err := sink.RenderSVG(l,
//	    sink.WithScale(20),
//	    sink.WithStyle(styles.Print),
//	)
//
// Coordinates are rounded to whole pixels at emission time.
//
// [layout.Layout]: github.com/matzehuels/floorplan/pkg/layout.Layout
// [geom.Scale]: github.com/matzehuels/floorplan/pkg/geom.Scale
// [render.ToPNG]: github.com/matzehuels/floorplan/pkg/render.ToPNG
// [render.ToPDF]: github.com/matzehuels/floorplan/pkg/render.ToPDF
package sink
