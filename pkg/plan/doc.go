// Package plan places the spaces of a building onto a feet-based grid.
//
// # Topology
//
// The supported building family has a closed topology: two side columns of
// rooms flanking a central hall, split into two rows.
//
//	+--------+-----------+--------+
//	| left / |           | right/ |
//	|  top   |           |  top   |
//	+--------+   hall    +--------+
//	| left / |  +-----+  | right/ |
//	| bottom |  |stair|  | bottom |
//	+--------+--+-----+--+--------+
//
// A [BuildingSpec] declares the overall footprint, one [RoomSpec] per side
// cell, the [HallSpec] and the [StairSpec]. [Layout] validates the spec and
// returns a [FloorPlan] whose rooms and hall tile the footprint exactly, with
// the stair carved out of the hall at one of its corners.
//
// # Validation
//
// Layout never returns partial geometry. Violations are reported as
// configuration errors from [github.com/matzehuels/floorplan/pkg/errors]:
//
//   - INVALID_SPAN: a span is <= 0 or non-finite (margin and height may be 0)
//   - INCONSISTENT_PARTITION: column or row spans do not add up, or a side
//     cell is missing, duplicated or placed in the center column
//   - STAIR_OUT_OF_BOUNDS: the stair is wider or longer than the hall
//   - INVALID_TREAD_COUNT: fewer than one tread
//
// # Example
//
//	fp, err := plan.Layout(plan.Reference())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(fp.Hall.Rect) // {{11 0} 12 24}
package plan
