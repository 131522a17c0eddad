package plan

import (
	"slices"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
)

// Column is a vertical band of the plan.
type Column string

// Columns, left to right.
const (
	Left   Column = "left"
	Center Column = "center"
	Right  Column = "right"
)

// Row is a horizontal band of the plan.
type Row string

// Rows, top to bottom.
const (
	Top    Row = "top"
	Bottom Row = "bottom"
)

// Anchor names the hall corner the stair is pushed into.
type Anchor string

// Stair anchors. The zero value means BottomLeft.
const (
	BottomLeft  Anchor = "bottom-left"
	BottomRight Anchor = "bottom-right"
	TopLeft     Anchor = "top-left"
	TopRight    Anchor = "top-right"
)

var validAnchors = []Anchor{"", BottomLeft, BottomRight, TopLeft, TopRight}

// Identifiers of the non-room spaces.
const (
	HallID  = "hall"
	StairID = "stairs"
)

// BuildingSpec is the declarative description of a building.
// Width and Length must equal the sum of the room and hall spans per axis.
type BuildingSpec struct {
	Name   string      `json:"name,omitempty" toml:"name" yaml:"name,omitempty"`
	Width  geom.Length `json:"width" toml:"width" yaml:"width"`
	Length geom.Length `json:"length" toml:"length" yaml:"length"`
	Margin geom.Length `json:"margin" toml:"margin" yaml:"margin"`
	// Height is the storey height shown in the height note. Zero omits it.
	Height geom.Length `json:"height,omitempty" toml:"height" yaml:"height,omitempty"`

	Rooms []RoomSpec `json:"rooms" toml:"rooms" yaml:"rooms"`
	Hall  HallSpec   `json:"hall" toml:"hall" yaml:"hall"`
	Stair StairSpec  `json:"stair" toml:"stair" yaml:"stair"`
}

// RoomSpec describes one corner room. Width runs along x, Length along y.
type RoomSpec struct {
	ID     string      `json:"id" toml:"id" yaml:"id"`
	Name   string      `json:"name,omitempty" toml:"name" yaml:"name,omitempty"`
	Width  geom.Length `json:"width" toml:"width" yaml:"width"`
	Length geom.Length `json:"length" toml:"length" yaml:"length"`
	Column Column      `json:"column" toml:"column" yaml:"column"`
	Row    Row         `json:"row" toml:"row" yaml:"row"`
}

// DisplayName returns Name, falling back to ID.
func (r RoomSpec) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// HallSpec describes the central hall spanning both rows.
type HallSpec struct {
	Name   string      `json:"name,omitempty" toml:"name" yaml:"name,omitempty"`
	Width  geom.Length `json:"width" toml:"width" yaml:"width"`
	Length geom.Length `json:"length" toml:"length" yaml:"length"`
}

// DisplayName returns Name, falling back to "Hall".
func (h HallSpec) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return "Hall"
}

// StairSpec describes the staircase placed inside the hall.
type StairSpec struct {
	Caption string      `json:"caption,omitempty" toml:"caption" yaml:"caption,omitempty"`
	Width   geom.Length `json:"width" toml:"width" yaml:"width"`
	Length  geom.Length `json:"length" toml:"length" yaml:"length"`
	Treads  int         `json:"treads" toml:"treads" yaml:"treads"`
	Anchor  Anchor      `json:"anchor,omitempty" toml:"anchor" yaml:"anchor,omitempty"`
}

// DisplayCaption returns Caption, falling back to "Stairs".
func (s StairSpec) DisplayCaption() string {
	if s.Caption != "" {
		return s.Caption
	}
	return "Stairs"
}

// ResolvedAnchor returns the anchor with the default applied.
func (s StairSpec) ResolvedAnchor() Anchor {
	if s.Anchor == "" {
		return BottomLeft
	}
	return s.Anchor
}

// Validate checks every span, label and the tread count. It does not check
// how the spans partition the building; see [Layout].
func (b BuildingSpec) Validate() error {
	if err := errors.ValidateLabel("building name", b.Name); err != nil {
		return err
	}
	if err := errors.ValidateSpan("building width", float64(b.Width)); err != nil {
		return err
	}
	if err := errors.ValidateSpan("building length", float64(b.Length)); err != nil {
		return err
	}
	if err := errors.ValidateDistance("margin", float64(b.Margin)); err != nil {
		return err
	}
	if err := errors.ValidateDistance("height", float64(b.Height)); err != nil {
		return err
	}

	for _, r := range b.Rooms {
		if err := r.validate(); err != nil {
			return err
		}
	}

	if err := errors.ValidateLabel("hall name", b.Hall.Name); err != nil {
		return err
	}
	if err := errors.ValidateSpan("hall width", float64(b.Hall.Width)); err != nil {
		return err
	}
	if err := errors.ValidateSpan("hall length", float64(b.Hall.Length)); err != nil {
		return err
	}

	return b.Stair.validate()
}

func (r RoomSpec) validate() error {
	if err := errors.ValidateID(r.ID); err != nil {
		return err
	}
	if err := errors.ValidateLabel("room name", r.Name); err != nil {
		return err
	}
	if err := errors.ValidateSpan("room "+r.ID+" width", float64(r.Width)); err != nil {
		return err
	}
	return errors.ValidateSpan("room "+r.ID+" length", float64(r.Length))
}

func (s StairSpec) validate() error {
	if err := errors.ValidateLabel("stair caption", s.Caption); err != nil {
		return err
	}
	if err := errors.ValidateSpan("stair width", float64(s.Width)); err != nil {
		return err
	}
	if err := errors.ValidateSpan("stair length", float64(s.Length)); err != nil {
		return err
	}
	if err := errors.ValidateTreadCount(s.Treads); err != nil {
		return err
	}
	if !slices.Contains(validAnchors, s.Anchor) {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid stair anchor: %q (must be one of: bottom-left, bottom-right, top-left, top-right)", s.Anchor)
	}
	return nil
}
