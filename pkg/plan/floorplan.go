package plan

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
)

// tolerance is the slack, in feet, allowed when comparing summed spans.
const tolerance = 1e-9

// FloorPlan is the placed geometry of a building. It is produced by [Layout]
// and treated as read-only afterwards.
type FloorPlan struct {
	Name      string       `json:"name,omitempty"`
	Footprint geom.Rect    `json:"footprint"`
	Margin    geom.Length  `json:"margin"`
	Height    geom.Length  `json:"height,omitempty"`
	Rooms     []PlacedRoom `json:"rooms"`
	Hall      PlacedHall   `json:"hall"`
	Stair     PlacedStair  `json:"stair"`
}

// PlacedRoom pairs a room spec with its rectangle.
type PlacedRoom struct {
	Spec RoomSpec  `json:"spec"`
	Rect geom.Rect `json:"rect"`
}

// PlacedHall pairs the hall spec with its rectangle.
type PlacedHall struct {
	Spec HallSpec  `json:"spec"`
	Rect geom.Rect `json:"rect"`
}

// PlacedStair pairs the stair spec with its rectangle.
type PlacedStair struct {
	Spec StairSpec `json:"spec"`
	Rect geom.Rect `json:"rect"`
}

// Space is a named rectangle of the tiling: a room or the hall.
type Space struct {
	ID   string
	Name string
	Rect geom.Rect
}

// Spaces returns the rooms followed by the hall. Together they tile the
// footprint.
func (fp *FloorPlan) Spaces() []Space {
	out := make([]Space, 0, len(fp.Rooms)+1)
	for _, r := range fp.Rooms {
		out = append(out, Space{ID: r.Spec.ID, Name: r.Spec.DisplayName(), Rect: r.Rect})
	}
	return append(out, Space{ID: HallID, Name: fp.Hall.Spec.DisplayName(), Rect: fp.Hall.Rect})
}

// Room returns the placed room with the given id.
func (fp *FloorPlan) Room(id string) (PlacedRoom, bool) {
	for _, r := range fp.Rooms {
		if r.Spec.ID == id {
			return r, true
		}
	}
	return PlacedRoom{}, false
}

// Verify checks the tiling invariants: every space lies inside the
// footprint, no two spaces overlap, their areas add up to the footprint's,
// and the stair sits inside the hall. Layout output always verifies; the
// check exists for plans decoded from JSON.
func (fp *FloorPlan) Verify() error {
	spaces := fp.Spaces()
	areas := make([]float64, len(spaces))

	for i, s := range spaces {
		if s.Rect.Width <= 0 || s.Rect.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidSpan, "%s has a degenerate rectangle %vx%v", s.ID, s.Rect.Width, s.Rect.Height)
		}
		if !within(fp.Footprint, s.Rect) {
			return errors.New(errors.ErrCodeInconsistentPartition, "%s lies outside the building footprint", s.ID)
		}
		areas[i] = s.Rect.Area()
		for _, o := range spaces[:i] {
			if overlap := s.Rect.Overlap(o.Rect); overlap > tolerance {
				return errors.New(errors.ErrCodeInconsistentPartition, "%s overlaps %s by %g sq ft", s.ID, o.ID, overlap)
			}
		}
	}

	if total, want := floats.Sum(areas), fp.Footprint.Area(); !scalar.EqualWithinAbs(total, want, tolerance) {
		return errors.New(errors.ErrCodeInconsistentPartition, "spaces cover %g sq ft, footprint is %g sq ft", total, want)
	}

	if !within(fp.Hall.Rect, fp.Stair.Rect) {
		return errors.New(errors.ErrCodeStairOutOfBounds, "stair %v does not fit inside hall %v", fp.Stair.Rect, fp.Hall.Rect)
	}
	return nil
}

// within is Rect.Contains with the summing tolerance applied to every edge.
func within(outer, inner geom.Rect) bool {
	const eps = geom.Length(tolerance)
	return inner.X() >= outer.X()-eps && inner.Right() <= outer.Right()+eps &&
		inner.Y() >= outer.Y()-eps && inner.Bottom() <= outer.Bottom()+eps
}
