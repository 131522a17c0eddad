package annotate

import (
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Alignment says how a label relates to its rectangle.
type Alignment string

const (
	Centered         Alignment = "centered"
	OffsetFromCorner Alignment = "offset"
)

// Baseline offsets of a centered label relative to the rectangle center.
const (
	TitleRise    geom.Length = 0.3
	SubtitleDrop geom.Length = 0.6
)

// DefaultCaptionOffset is where the stair caption sits relative to the
// stair's top-left corner.
var DefaultCaptionOffset = geom.Pt(8, -6)

// Label is positioned text. Baselines holds one point per entry in Lines.
// Centered lines are middle-anchored on their baseline point; an offset
// label starts at it.
type Label struct {
	Anchor    geom.Point   `json:"anchor"`
	Lines     []string     `json:"lines"`
	Alignment Alignment    `json:"alignment"`
	Baselines []geom.Point `json:"baselines"`
}

// Validate checks the text of every line and that each line has a baseline.
func (l Label) Validate() error {
	if len(l.Baselines) != len(l.Lines) {
		return errors.New(errors.ErrCodeInvalidInput, "label has %d lines but %d baselines", len(l.Lines), len(l.Baselines))
	}
	for _, line := range l.Lines {
		if err := errors.ValidateLabel("label", line); err != nil {
			return err
		}
	}
	return nil
}

// Center places title just above the center of r and subtitle just below.
// An empty subtitle yields a single-line label.
func Center(r geom.Rect, title, subtitle string) Label {
	c := r.Center()
	l := Label{
		Anchor:    c,
		Lines:     []string{title},
		Alignment: Centered,
		Baselines: []geom.Point{c.Add(0, -TitleRise)},
	}
	if subtitle != "" {
		l.Lines = append(l.Lines, subtitle)
		l.Baselines = append(l.Baselines, c.Add(0, SubtitleDrop))
	}
	return l
}

// Offset anchors a single line at r's origin shifted by (dx, dy).
func Offset(r geom.Rect, dx, dy geom.Length, text string) Label {
	a := r.Origin.Add(dx, dy)
	return Label{
		Anchor:    a,
		Lines:     []string{text},
		Alignment: OffsetFromCorner,
		Baselines: []geom.Point{a},
	}
}

// PlanLabels labels every room and the hall with name and size, followed by
// the stair caption at captionOffset from the stair's corner.
func PlanLabels(fp *plan.FloorPlan, captionOffset geom.Point) []Label {
	labels := make([]Label, 0, len(fp.Rooms)+2)
	for _, r := range fp.Rooms {
		labels = append(labels, Center(r.Rect, r.Spec.DisplayName(), sizeText(r.Rect)))
	}
	labels = append(labels, Center(fp.Hall.Rect, fp.Hall.Spec.DisplayName(), sizeText(fp.Hall.Rect)))
	return append(labels, Offset(fp.Stair.Rect, captionOffset.X, captionOffset.Y, fp.Stair.Spec.DisplayCaption()))
}

// sizeText is length × width, the way the spaces are annotated on paper.
func sizeText(r geom.Rect) string {
	return geom.FormatSize(r.Height, r.Width)
}
