// Package geom provides the shared geometry of floorplan.
//
// All layout math happens in feet. A [Length] is a span in feet, a [Point] is
// a position relative to the building's top-left corner (margins excluded),
// and a [Rect] is an axis-aligned rectangle with its origin at the top-left.
// The y axis grows downwards, matching SVG.
//
// Pixels only appear at the emission boundary: [ToPixels] and [Scale]
// convert feet into canvas units for a caller-chosen pixels-per-foot factor.
// Keeping everything upstream in feet makes the layout engine independent of
// output resolution.
//
//	s := geom.Scale(20)          // 1' = 20 px
//	px := s.Px(geom.Length(11))  // 220
//
// [FormatFeet] and [FormatFeetInches] produce the display strings used on
// dimension lines and notes (34', 11'-6").
package geom
