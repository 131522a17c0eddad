package sink

import "github.com/matzehuels/floorplan/pkg/layout"

// RenderJSON writes the layout document for l. The output can be rendered
// again later with [layout.Unmarshal] and [RenderSVG].
func RenderJSON(l layout.Layout) ([]byte, error) {
	return layout.Marshal(l)
}
