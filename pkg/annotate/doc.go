// Package annotate derives the secondary geometry of a floor plan: dimension
// lines, label anchors and stair treads.
//
// Everything here works in feet, in the same coordinate space as
// [github.com/matzehuels/floorplan/pkg/plan]. Conversion to pixels happens
// later, when a sink draws the result.
//
// # Dimensions
//
// [Horizontal] and [Vertical] describe a measured span with arrowheads at
// both ends. [BuildingDimensions] places the overall width above the
// building and the overall length to its left, a fixed standoff away from
// the outline so the lines never cross a room.
//
// # Labels
//
// [Center] splits a title and a subtitle around a rectangle's center;
// [Offset] pins a single line at a fixed distance from a rectangle's corner.
//
// # Treads
//
// [Treads] divides a stair rectangle into evenly spaced steps.
package annotate
