package plan

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
)

type cell struct {
	col Column
	row Row
}

// cellOrder is the canonical room order of a FloorPlan.
var cellOrder = []cell{
	{Left, Top},
	{Left, Bottom},
	{Right, Top},
	{Right, Bottom},
}

// Layout places every room, the hall and the stair of spec.
//
// The building width is split into three column bands (left rooms, hall,
// right rooms) and the length into two row bands (top rooms, bottom rooms).
// Side bands hold two stacked rooms; the hall band spans both rows. The stair
// is pushed into the hall corner named by its anchor, bottom-left by default.
//
// Layout is a pure function: equal specs produce identical plans.
func Layout(spec BuildingSpec) (*FloorPlan, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	cells, err := assignCells(spec.Rooms)
	if err != nil {
		return nil, err
	}

	leftW, err := bandSpan("left column width", cells[cell{Left, Top}].Width, cells[cell{Left, Bottom}].Width)
	if err != nil {
		return nil, err
	}
	rightW, err := bandSpan("right column width", cells[cell{Right, Top}].Width, cells[cell{Right, Bottom}].Width)
	if err != nil {
		return nil, err
	}
	topL, err := bandSpan("top row length", cells[cell{Left, Top}].Length, cells[cell{Right, Top}].Length)
	if err != nil {
		return nil, err
	}
	bottomL, err := bandSpan("bottom row length", cells[cell{Left, Bottom}].Length, cells[cell{Right, Bottom}].Length)
	if err != nil {
		return nil, err
	}

	hall := spec.Hall
	if !equal(leftW+hall.Width+rightW, spec.Width) {
		return nil, errors.New(errors.ErrCodeInconsistentPartition,
			"column widths %g + %g + %g = %g do not match building width %g",
			leftW, hall.Width, rightW, leftW+hall.Width+rightW, spec.Width)
	}
	if !equal(topL+bottomL, spec.Length) {
		return nil, errors.New(errors.ErrCodeInconsistentPartition,
			"row lengths %g + %g = %g do not match building length %g",
			topL, bottomL, topL+bottomL, spec.Length)
	}
	if !equal(hall.Length, spec.Length) {
		return nil, errors.New(errors.ErrCodeInconsistentPartition,
			"hall length %g does not match building length %g", hall.Length, spec.Length)
	}

	// Band edges. Sums reuse the declared spans so shared walls compare equal.
	xs := map[Column]geom.Length{Left: 0, Center: leftW, Right: leftW + hall.Width}
	ys := map[Row]geom.Length{Top: 0, Bottom: topL}
	widths := map[Column]geom.Length{Left: leftW, Right: rightW}
	lengths := map[Row]geom.Length{Top: topL, Bottom: bottomL}

	fp := &FloorPlan{
		Name:      spec.Name,
		Footprint: geom.R(0, 0, spec.Width, spec.Length),
		Margin:    spec.Margin,
		Height:    spec.Height,
		Rooms:     make([]PlacedRoom, 0, len(cellOrder)),
	}
	for _, c := range cellOrder {
		fp.Rooms = append(fp.Rooms, PlacedRoom{
			Spec: cells[c],
			Rect: geom.R(xs[c.col], ys[c.row], widths[c.col], lengths[c.row]),
		})
	}

	hallRect := geom.R(xs[Center], 0, hall.Width, spec.Length)
	fp.Hall = PlacedHall{Spec: hall, Rect: hallRect}

	stairRect, err := placeStair(spec.Stair, hallRect)
	if err != nil {
		return nil, err
	}
	fp.Stair = PlacedStair{Spec: spec.Stair, Rect: stairRect}

	if err := fp.Verify(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "layout produced an invalid tiling")
	}
	return fp, nil
}

// assignCells maps each side cell to its room. Every cell must be filled
// exactly once and no room may claim the center column.
func assignCells(rooms []RoomSpec) (map[cell]RoomSpec, error) {
	cells := make(map[cell]RoomSpec, len(cellOrder))
	ids := make(map[string]bool, len(rooms))

	for _, r := range rooms {
		if ids[r.ID] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate room id %q", r.ID)
		}
		ids[r.ID] = true

		switch r.Column {
		case Left, Right:
		case Center:
			return nil, errors.New(errors.ErrCodeInconsistentPartition,
				"room %q cannot occupy the center column (reserved for the hall)", r.ID)
		default:
			return nil, errors.New(errors.ErrCodeInconsistentPartition,
				"room %q has invalid column %q (must be left or right)", r.ID, r.Column)
		}
		if r.Row != Top && r.Row != Bottom {
			return nil, errors.New(errors.ErrCodeInconsistentPartition,
				"room %q has invalid row %q (must be top or bottom)", r.ID, r.Row)
		}

		c := cell{r.Column, r.Row}
		if prev, ok := cells[c]; ok {
			return nil, errors.New(errors.ErrCodeInconsistentPartition,
				"rooms %q and %q both occupy %s/%s", prev.ID, r.ID, c.col, c.row)
		}
		cells[c] = r
	}

	for _, c := range cellOrder {
		if _, ok := cells[c]; !ok {
			return nil, errors.New(errors.ErrCodeInconsistentPartition, "no room occupies %s/%s", c.col, c.row)
		}
	}
	return cells, nil
}

// bandSpan returns the common span of the two rooms sharing a band.
func bandSpan(name string, a, b geom.Length) (geom.Length, error) {
	if !equal(a, b) {
		return 0, errors.New(errors.ErrCodeInconsistentPartition, "%s differs between rooms: %g vs %g", name, a, b)
	}
	return a, nil
}

// placeStair pushes the stair into the anchored corner of the hall.
func placeStair(s StairSpec, hall geom.Rect) (geom.Rect, error) {
	if s.Width > hall.Width || s.Length > hall.Height {
		return geom.Rect{}, errors.New(errors.ErrCodeStairOutOfBounds,
			"stair %gx%g exceeds hall %gx%g", s.Width, s.Length, hall.Width, hall.Height)
	}

	x, y := hall.X(), hall.Bottom()-s.Length
	switch s.ResolvedAnchor() {
	case BottomRight:
		x = hall.Right() - s.Width
	case TopLeft:
		y = hall.Y()
	case TopRight:
		x, y = hall.Right()-s.Width, hall.Y()
	}
	return geom.R(x, y, s.Width, s.Length), nil
}

func equal(a, b geom.Length) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), tolerance)
}
