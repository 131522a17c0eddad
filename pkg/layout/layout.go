package layout

import (
	"github.com/matzehuels/floorplan/pkg/annotate"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Layout is a placed floor plan together with its annotation geometry.
// All coordinates are in feet relative to the building's top-left corner.
type Layout struct {
	Plan       *plan.FloorPlan      `json:"plan"`
	Dimensions []annotate.Dimension `json:"dimensions"`
	Labels     []annotate.Label     `json:"labels"`
	Treads     []geom.Line          `json:"treads"`
}

// Option configures [Compute].
type Option func(*config)

type config struct {
	standoff      geom.Length
	captionOffset geom.Point
}

// WithStandoff sets the distance between the outline and the dimension lines.
func WithStandoff(d geom.Length) Option {
	return func(c *config) { c.standoff = d }
}

// WithCaptionOffset sets the stair caption position relative to the stair's
// top-left corner.
func WithCaptionOffset(p geom.Point) Option {
	return func(c *config) { c.captionOffset = p }
}

// Compute lays out spec and annotates the result. On error no geometry is
// returned.
func Compute(spec plan.BuildingSpec, opts ...Option) (Layout, error) {
	c := config{
		standoff:      annotate.DefaultStandoff,
		captionOffset: annotate.DefaultCaptionOffset,
	}
	for _, opt := range opts {
		opt(&c)
	}

	fp, err := plan.Layout(spec)
	if err != nil {
		return Layout{}, err
	}
	return annotatePlan(fp, c)
}

func annotatePlan(fp *plan.FloorPlan, c config) (Layout, error) {
	dims, err := annotate.BuildingDimensions(fp, c.standoff)
	if err != nil {
		return Layout{}, err
	}
	treads, err := annotate.Treads(fp.Stair.Rect, fp.Stair.Spec.Treads)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Plan:       fp,
		Dimensions: dims,
		Labels:     annotate.PlanLabels(fp, c.captionOffset),
		Treads:     treads,
	}, nil
}

// Canvas returns the drawing size in feet: the footprint plus the margin on
// every side.
func (l Layout) Canvas() (width, height geom.Length) {
	m := l.Plan.Margin
	return l.Plan.Footprint.Width + 2*m, l.Plan.Footprint.Height + 2*m
}

// Title is the figure title: the building name and its overall size.
func (l Layout) Title() string {
	name := l.Plan.Name
	if name == "" {
		name = "Floor plan"
	}
	return name + " — " + geom.FormatSize(l.Plan.Footprint.Width, l.Plan.Footprint.Height)
}
