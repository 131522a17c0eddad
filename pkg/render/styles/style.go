// Package styles defines the visual themes used to draw floor plans.
//
// A [Style] is a palette plus stroke widths. Sinks turn it into inline SVG
// style attributes so the drawing looks the same in browsers, rsvg-convert
// and the in-process rasterizer, which ignores stylesheets.
package styles

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Style is a drawing theme.
type Style struct {
	Name       string
	Background string // empty for transparent
	Outline    string
	Space      string // room and hall stroke
	SpaceFill  string
	Stair      string
	StairFill  string
	Text       string
	Muted      string // sub-labels and notes
	Dimension  string // dimension lines and arrowheads
	North      string
	Font       string

	OutlineWidth float64
	SpaceWidth   float64
}

// Blueprint is light ink on a dark field. It is the default.
var Blueprint = Style{
	Name:         "blueprint",
	Background:   "#0f1e3d",
	Outline:      "#e6eeff",
	Space:        "#b8c9f2",
	SpaceFill:    "#14264d",
	Stair:        "#f2c66d",
	StairFill:    "#1b2f5c",
	Text:         "#e6eeff",
	Muted:        "#9fb3e0",
	Dimension:    "#88a7ff",
	North:        "#8ad6c1",
	Font:         "ui-sans-serif, system-ui, sans-serif",
	OutlineWidth: 3,
	SpaceWidth:   1.5,
}

// Print is dark ink on white paper.
var Print = Style{
	Name:         "print",
	Background:   "#ffffff",
	Outline:      "#111111",
	Space:        "#333333",
	SpaceFill:    "#ffffff",
	Stair:        "#333333",
	StairFill:    "#f2f2f2",
	Text:         "#111111",
	Muted:        "#555555",
	Dimension:    "#3050b0",
	North:        "#1f7a5c",
	Font:         "Helvetica, Arial, sans-serif",
	OutlineWidth: 3,
	SpaceWidth:   1.5,
}

var registry = []Style{Blueprint, Print}

// Names lists the registered style names.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the style with the given name.
func Lookup(name string) (Style, error) {
	i := slices.IndexFunc(registry, func(s Style) bool { return s.Name == name })
	if i < 0 {
		return Style{}, errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: %s)", name, strings.Join(Names(), ", "))
	}
	return registry[i], nil
}

// The methods below return CSS declarations for use as inline style
// attributes.

func (s Style) OutlineCSS() string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", s.Outline, s.OutlineWidth)
}

func (s Style) SpaceCSS() string {
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", s.SpaceFill, s.Space, s.SpaceWidth)
}

func (s Style) StairCSS() string {
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", s.StairFill, s.Stair, s.SpaceWidth)
}

func (s Style) StepCSS() string {
	return fmt.Sprintf("stroke:%s;stroke-width:1", s.Stair)
}

func (s Style) DimLineCSS() string {
	return fmt.Sprintf("stroke:%s;stroke-width:1.2", s.Dimension)
}

func (s Style) LabelCSS() string {
	return fmt.Sprintf("fill:%s;font-family:%s;font-size:14px;font-weight:600", s.Text, s.Font)
}

func (s Style) SubLabelCSS() string {
	return fmt.Sprintf("fill:%s;font-family:%s;font-size:12px", s.Muted, s.Font)
}

func (s Style) DimTextCSS() string {
	return fmt.Sprintf("fill:%s;font-family:%s;font-size:12px", s.Dimension, s.Font)
}

func (s Style) NoteCSS() string {
	return fmt.Sprintf("fill:%s;font-family:%s;font-size:12px;font-style:italic", s.Muted, s.Font)
}

func (s Style) NorthCSS() string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", s.North)
}

func (s Style) NorthTextCSS() string {
	return fmt.Sprintf("fill:%s;font-family:%s;font-size:14px;font-weight:700", s.North, s.Font)
}
