// Package adjacency renders the room graph of a floor plan with Graphviz.
//
// Every room and the hall becomes a node. Two spaces are joined by an edge
// when they share a wall of positive length; the edge is labeled with that
// length. The stair hangs off the hall with a dashed edge.
//
//	dot := adjacency.ToDOT(l.Plan)
//	svg, err := adjacency.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(svg)
//
// Spaces that only touch at a corner are not adjacent.
package adjacency
