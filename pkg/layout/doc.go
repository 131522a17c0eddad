// Package layout computes and serializes annotated floor plans.
//
// A [Layout] is the complete, feet-based geometry of one drawing: the placed
// spaces from [plan.Layout] plus the dimension lines, labels and stair treads
// derived from them by [annotate]. It is what every sink renders and what the
// JSON layout document stores.
//
//	l, err := layout.Compute(plan.Reference())
//	if err != nil {
//	    return err
//	}
//	data, _ := layout.Marshal(l)
//
// Computation is a pure function of the spec and the options; calling
// [Compute] twice with the same input produces identical layouts.
//
// [plan.Layout]: github.com/matzehuels/floorplan/pkg/plan.Layout
// [annotate]: github.com/matzehuels/floorplan/pkg/annotate
package layout
