package annotate

import (
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
)

// TreadInset is the gap between a tread line and the stair's side walls.
// Stairs narrower than four insets use a quarter of their width instead.
const TreadInset geom.Length = 0.2

// Treads returns count-1 horizontal lines splitting r into count equal steps,
// top to bottom. A single tread has no interior lines.
func Treads(r geom.Rect, count int) ([]geom.Line, error) {
	if err := errors.ValidateTreadCount(count); err != nil {
		return nil, err
	}

	inset := min(TreadInset, r.Width/4)
	step := r.Height / geom.Length(count)
	lines := make([]geom.Line, 0, count-1)
	for i := 1; i < count; i++ {
		y := r.Y() + step*geom.Length(i)
		lines = append(lines, geom.Line{
			From: geom.Pt(r.X()+inset, y),
			To:   geom.Pt(r.Right()-inset, y),
		})
	}
	return lines, nil
}
