package layout

// Visualization types.
const (
	VizTypePlan      = "plan"
	VizTypeAdjacency = "adjacency"
)

// Visual styles for rendering.
const (
	StyleBlueprint = "blueprint"
	StylePrint     = "print"
)

// DocumentVersion is written to every layout document.
const DocumentVersion = 1
