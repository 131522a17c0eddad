package sink

import (
	"bytes"
	"fmt"
	"html"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/floorplan/pkg/annotate"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/render/styles"
)

// DefaultScale is the drawing scale in pixels per foot.
const DefaultScale geom.Scale = 20

// Corner radii in pixels.
const (
	outlineRadius = 4
	spaceRadius   = 2
)

// Note and indicator positions in feet, relative to the footprint.
const (
	noteDrop        geom.Length = 0.8
	heightNoteInset geom.Length = 4
	northDX         geom.Length = 1.4
	northDY         geom.Length = 0.5
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale     geom.Scale
	style     styles.Style
	showNorth bool
	showNotes bool
}

func WithScale(s geom.Scale) SVGOption   { return func(r *svgRenderer) { r.scale = s } }
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithNorth(show bool) SVGOption      { return func(r *svgRenderer) { r.showNorth = show } }
func WithNotes(show bool) SVGOption      { return func(r *svgRenderer) { r.showNotes = show } }

// RenderSVG draws l as a standalone SVG document.
func RenderSVG(l layout.Layout, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{scale: DefaultScale, style: styles.Blueprint, showNorth: true, showNotes: true}
	for _, opt := range opts {
		opt(&r)
	}
	if err := errors.ValidateSpan("scale", float64(r.scale)); err != nil {
		return nil, err
	}
	if l.Plan == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout has no plan")
	}

	var buf bytes.Buffer
	c := canvas{SVG: svg.New(&buf), scale: r.scale, origin: geom.Pt(l.Plan.Margin, l.Plan.Margin)}

	cw, ch := l.Canvas()
	w, h := r.scale.PxInt(cw), r.scale.PxInt(ch)
	c.Startview(w, h, 0, 0, w, h)
	c.Title(l.Title())
	c.defs(r.style)
	if r.style.Background != "" {
		c.Rect(0, 0, w, h, "fill:"+r.style.Background)
	}

	fp := l.Plan
	c.rect(fp.Footprint, outlineRadius, `class="outer"`, r.style.OutlineCSS())

	c.Gid("spaces")
	for _, s := range fp.Spaces() {
		c.rect(s.Rect, spaceRadius, `class="space"`, fmt.Sprintf(`id="space-%s"`, html.EscapeString(s.ID)), r.style.SpaceCSS())
	}
	c.Gend()
	c.rect(fp.Stair.Rect, spaceRadius, `class="stairs"`, r.style.StairCSS())

	c.Gid("dimensions")
	for _, d := range l.Dimensions {
		c.dimension(d, r.style)
	}
	c.Gend()

	c.Gid("labels")
	for _, lbl := range l.Labels {
		c.label(lbl, r.style)
	}
	c.Gend()

	c.Gid("treads")
	for _, t := range l.Treads {
		c.line(t, `class="step-line"`, r.style.StepCSS())
	}
	c.Gend()

	if r.showNorth {
		c.north(fp.Footprint, r.style)
	}
	if r.showNotes {
		c.notes(l, r.scale, r.style)
	}

	c.End()
	return buf.Bytes(), nil
}

// canvas maps feet coordinates onto an svgo canvas.
type canvas struct {
	*svg.SVG
	scale  geom.Scale
	origin geom.Point
}

func (c canvas) px(p geom.Point) (int, int) {
	return c.scale.PxInt(c.origin.X + p.X), c.scale.PxInt(c.origin.Y + p.Y)
}

func (c canvas) defs(st styles.Style) {
	c.Def()
	c.Marker("arrow", 5, 5, 6, 6, `viewBox="0 0 10 10"`, `orient="auto-start-reverse"`)
	c.Path("M 0 0 L 10 5 L 0 10 z", "fill:"+st.Dimension)
	c.MarkerEnd()
	c.DefEnd()
}

func (c canvas) rect(r geom.Rect, radius int, s ...string) {
	x, y := c.px(r.Origin)
	c.Roundrect(x, y, c.scale.PxInt(r.Width), c.scale.PxInt(r.Height), radius, radius, s...)
}

func (c canvas) line(l geom.Line, s ...string) {
	x1, y1 := c.px(l.From)
	x2, y2 := c.px(l.To)
	c.Line(x1, y1, x2, y2, s...)
}

func (c canvas) dimension(d annotate.Dimension, st styles.Style) {
	c.line(d.Line(), `class="dim-line"`, `marker-start="url(#arrow)"`, `marker-end="url(#arrow)"`, st.DimLineCSS())

	x, y := c.px(d.LabelAnchor())
	attrs := []string{`class="dim-text"`, st.DimTextCSS() + ";text-anchor:middle"}
	if rot := d.LabelRotation(); rot != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%g %d %d)"`, rot, x, y))
	}
	c.Text(x, y, d.Label, attrs...)
}

func (c canvas) label(l annotate.Label, st styles.Style) {
	for i, line := range l.Lines {
		x, y := c.px(l.Baselines[i])
		switch {
		case l.Alignment == annotate.OffsetFromCorner:
			c.Text(x, y, line, `class="label"`, st.LabelCSS())
		case i == 0:
			c.Text(x, y, line, `class="label"`, st.LabelCSS()+";text-anchor:middle")
		default:
			c.Text(x, y, line, `class="sub-label"`, st.SubLabelCSS()+";text-anchor:middle")
		}
	}
}

// north draws the indicator just outside the top-right corner of fp.
func (c canvas) north(fp geom.Rect, st styles.Style) {
	x, y := c.px(geom.Pt(fp.Right()+northDX, fp.Y()+northDY))
	c.Gid("north")
	c.Path(fmt.Sprintf("M %d %d L %d %d M %d %d l -6 8 l 6 -20 l 6 20 z", x, y+30, x, y, x, y), st.NorthCSS())
	c.Text(x+10, y+6, "N", `class="north"`, st.NorthTextCSS())
	c.Gend()
}

func (c canvas) notes(l layout.Layout, scale geom.Scale, st styles.Style) {
	fp := l.Plan.Footprint
	y := fp.Bottom() + noteDrop

	x, py := c.px(geom.Pt(fp.X(), y))
	c.Text(x, py, fmt.Sprintf("Scale: 1' = %g px", float64(scale)), `class="scale-note"`, st.NoteCSS())

	if l.Plan.Height > 0 {
		x, py = c.px(geom.Pt(fp.Right()-heightNoteInset, y))
		c.Text(x, py, "Height: "+geom.FormatFeetInches(l.Plan.Height), `class="height-note"`, st.NoteCSS())
	}
}
