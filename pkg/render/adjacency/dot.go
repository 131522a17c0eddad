package adjacency

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/render"
)

// Edge is a wall shared by two spaces.
type Edge struct {
	From, To string
	Wall     geom.Length
}

// Edges returns every pair of spaces sharing a wall, in space order.
func Edges(fp *plan.FloorPlan) []Edge {
	spaces := fp.Spaces()
	var edges []Edge
	for i, a := range spaces {
		for _, b := range spaces[i+1:] {
			if w := a.Rect.SharedEdge(b.Rect); w > 0 {
				edges = append(edges, Edge{From: a.ID, To: b.ID, Wall: w})
			}
		}
	}
	return edges
}

// ToDOT converts a floor plan to an undirected Graphviz graph.
func ToDOT(fp *plan.FloorPlan) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	for _, s := range fp.Spaces() {
		// Seed neato with the plan position so the graph reads like the drawing.
		c := s.Rect.Center()
		label := s.Name + "\n" + geom.FormatSize(s.Rect.Height, s.Rect.Width)
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%g,%g\"];\n", s.ID, label, float64(c.X), -float64(c.Y))
	}
	stair := fp.Stair
	fmt.Fprintf(&buf, "  %q [label=%q, shape=box, style=\"dashed\"];\n", plan.StairID, stair.Spec.DisplayCaption())

	buf.WriteString("\n")
	for _, e := range Edges(fp) {
		fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", e.From, e.To, geom.FormatFeet(e.Wall))
	}
	fmt.Fprintf(&buf, "  %q -- %q [style=dashed];\n", plan.HallID, plan.StairID)

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return buf.Bytes(), nil
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
