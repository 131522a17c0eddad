package adjacency

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/floorplan/pkg/plan"
)

func referencePlan(t *testing.T) *plan.FloorPlan {
	t.Helper()
	fp, err := plan.Layout(plan.Reference())
	if err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestEdges(t *testing.T) {
	want := []Edge{
		{From: "left-top", To: "left-bottom", Wall: 11},
		{From: "left-top", To: "hall", Wall: 12},
		{From: "left-bottom", To: "hall", Wall: 12},
		{From: "right-top", To: "right-bottom", Wall: 11},
		{From: "right-top", To: "hall", Wall: 12},
		{From: "right-bottom", To: "hall", Wall: 12},
	}
	if diff := cmp.Diff(want, Edges(referencePlan(t))); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(referencePlan(t))

	for _, want := range []string{
		"graph G {",
		`"left-top" -- "hall" [label="12'"];`,
		`"left-top" -- "left-bottom" [label="11'"];`,
		`"hall" -- "stairs" [style=dashed];`,
		`"stairs" [label="Stairs"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"left-top" -- "right-top"`) {
		t.Error("rooms across the hall must not be adjacent")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(referencePlan(t)))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("RenderSVG() did not produce SVG:\n%s", svg)
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "graph {"); err == nil {
		t.Error("RenderSVG() should fail on malformed DOT")
	}
}
