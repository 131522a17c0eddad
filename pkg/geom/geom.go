package geom

import "math"

// Length is a one-dimensional span in feet.
type Length float64

// Point is a position in the feet-based plan coordinate space.
type Point struct {
	X Length `json:"x"`
	Y Length `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y Length) Point { return Point{X: x, Y: y} }

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy Length) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Rect is an axis-aligned rectangle. Origin is its top-left corner.
type Rect struct {
	Origin Point  `json:"origin"`
	Width  Length `json:"width"`
	Height Length `json:"height"`
}

// R builds a Rect from its top-left corner and size.
func R(x, y, w, h Length) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Width: w, Height: h}
}

// X returns the left edge.
func (r Rect) X() Length { return r.Origin.X }

// Y returns the top edge.
func (r Rect) Y() Length { return r.Origin.Y }

// Right returns the right edge.
func (r Rect) Right() Length { return r.Origin.X + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() Length { return r.Origin.Y + r.Height }

// Center returns the geometric center.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Width/2, Y: r.Origin.Y + r.Height/2}
}

// Area returns width × height in square feet.
func (r Rect) Area() float64 { return float64(r.Width) * float64(r.Height) }

// Contains reports whether o lies entirely within r (edges may touch).
func (r Rect) Contains(o Rect) bool {
	return o.X() >= r.X() && o.Right() <= r.Right() &&
		o.Y() >= r.Y() && o.Bottom() <= r.Bottom()
}

// Overlap returns the area shared by r and o. Rectangles that only touch
// along an edge have zero overlap.
func (r Rect) Overlap(o Rect) float64 {
	w := math.Min(float64(r.Right()), float64(o.Right())) - math.Max(float64(r.X()), float64(o.X()))
	h := math.Min(float64(r.Bottom()), float64(o.Bottom())) - math.Max(float64(r.Y()), float64(o.Y()))
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// SharedEdge returns the length of wall shared by two non-overlapping
// rectangles: the overlap of their facing edges when they touch, else 0.
func (r Rect) SharedEdge(o Rect) Length {
	span := func(a0, a1, b0, b1 Length) Length {
		return Length(math.Max(0, math.Min(float64(a1), float64(b1))-math.Max(float64(a0), float64(b0))))
	}
	switch {
	case r.Right() == o.X() || o.Right() == r.X():
		return span(r.Y(), r.Bottom(), o.Y(), o.Bottom())
	case r.Bottom() == o.Y() || o.Bottom() == r.Y():
		return span(r.X(), r.Right(), o.X(), o.Right())
	}
	return 0
}

// Line is a straight segment between two points.
type Line struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Length returns the Euclidean length of the segment.
func (l Line) Length() Length {
	return Length(math.Hypot(float64(l.To.X-l.From.X), float64(l.To.Y-l.From.Y)))
}

// Midpoint returns the point halfway along the segment.
func (l Line) Midpoint() Point {
	return Point{X: (l.From.X + l.To.X) / 2, Y: (l.From.Y + l.To.Y) / 2}
}
