package annotate

import (
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Axis is the orientation of a dimension line.
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
)

// Distances between a dimension line and its label, in feet.
const (
	HorizontalLabelGap geom.Length = 0.3
	VerticalLabelGap   geom.Length = 0.4
)

// DefaultStandoff is the distance between the building outline and its
// dimension lines.
const DefaultStandoff geom.Length = 1.5

// Dimension is a measured span drawn with an arrowhead at each end.
type Dimension struct {
	Axis   Axis        `json:"axis"`
	Start  geom.Point  `json:"start"`
	Length geom.Length `json:"length"`
	Label  string      `json:"label"`
}

// Horizontal describes a dimension along y = origin.Y from origin.X to
// origin.X+length. Its label sits centered above the midpoint.
func Horizontal(origin geom.Point, length geom.Length, label string) Dimension {
	return Dimension{Axis: AxisHorizontal, Start: origin, Length: length, Label: label}
}

// Vertical describes a dimension along x = origin.X from origin.Y to
// origin.Y+length. Its label is rotated and sits left of the midpoint.
func Vertical(origin geom.Point, length geom.Length, label string) Dimension {
	return Dimension{Axis: AxisVertical, Start: origin, Length: length, Label: label}
}

// End returns the far endpoint.
func (d Dimension) End() geom.Point {
	if d.Axis == AxisVertical {
		return d.Start.Add(0, d.Length)
	}
	return d.Start.Add(d.Length, 0)
}

// Line returns the dimension line itself. Both endpoints carry an arrowhead.
func (d Dimension) Line() geom.Line {
	return geom.Line{From: d.Start, To: d.End()}
}

// Arrows returns the two arrowhead tips.
func (d Dimension) Arrows() [2]geom.Point {
	return [2]geom.Point{d.Start, d.End()}
}

// LabelAnchor returns where the label text is anchored (text-anchor middle).
func (d Dimension) LabelAnchor() geom.Point {
	mid := d.Line().Midpoint()
	if d.Axis == AxisVertical {
		return mid.Add(-VerticalLabelGap, 0)
	}
	return mid.Add(0, -HorizontalLabelGap)
}

// LabelRotation returns the label rotation in degrees about its anchor.
func (d Dimension) LabelRotation() float64 {
	if d.Axis == AxisVertical {
		return -90
	}
	return 0
}

// Validate rejects negative or non-finite spans and coordinates.
func (d Dimension) Validate() error {
	if err := errors.ValidateDistance(string(d.Axis)+" dimension length", float64(d.Length)); err != nil {
		return err
	}
	if err := errors.ValidateOffset("dimension x", float64(d.Start.X)); err != nil {
		return err
	}
	return errors.ValidateOffset("dimension y", float64(d.Start.Y))
}

// BuildingDimensions returns the overall width dimension, standoff above the
// top edge, and the overall length dimension, standoff left of the left edge.
func BuildingDimensions(fp *plan.FloorPlan, standoff geom.Length) ([]Dimension, error) {
	if err := errors.ValidateDistance("dimension standoff", float64(standoff)); err != nil {
		return nil, err
	}

	fr := fp.Footprint
	dims := []Dimension{
		Horizontal(fr.Origin.Add(0, -standoff), fr.Width, geom.FormatFeet(fr.Width)+" width"),
		Vertical(fr.Origin.Add(-standoff, 0), fr.Height, geom.FormatFeet(fr.Height)+" length"),
	}
	for _, d := range dims {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	return dims, nil
}
