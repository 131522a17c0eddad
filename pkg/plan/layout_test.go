package plan

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
)

func TestLayoutReference(t *testing.T) {
	fp, err := Layout(Reference())
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	want := map[string]geom.Rect{
		"left-top":     geom.R(0, 0, 11, 12),
		"left-bottom":  geom.R(0, 12, 11, 12),
		"right-top":    geom.R(23, 0, 11, 12),
		"right-bottom": geom.R(23, 12, 11, 12),
		HallID:         geom.R(11, 0, 12, 24),
	}
	got := make(map[string]geom.Rect)
	for _, s := range fp.Spaces() {
		got[s.ID] = s.Rect
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spaces mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(geom.R(11, 16, 6, 8), fp.Stair.Rect); diff != "" {
		t.Errorf("stair mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geom.R(0, 0, 34, 24), fp.Footprint); diff != "" {
		t.Errorf("footprint mismatch (-want +got):\n%s", diff)
	}
	if fp.Margin != 4 {
		t.Errorf("Margin = %v, want 4", fp.Margin)
	}
}

func TestLayoutRoomOrder(t *testing.T) {
	spec := Reference()
	// Declaration order must not matter.
	spec.Rooms[0], spec.Rooms[3] = spec.Rooms[3], spec.Rooms[0]
	spec.Rooms[1], spec.Rooms[2] = spec.Rooms[2], spec.Rooms[1]

	fp, err := Layout(spec)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	var ids []string
	for _, r := range fp.Rooms {
		ids = append(ids, r.Spec.ID)
	}
	want := []string{"left-top", "left-bottom", "right-top", "right-bottom"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("room order mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutTiling(t *testing.T) {
	specs := map[string]BuildingSpec{
		"reference": Reference(),
		"uneven": func() BuildingSpec {
			s := Reference()
			s.Width, s.Length = 30.5, 21
			s.Rooms = []RoomSpec{
				{ID: "kitchen", Width: 9.5, Length: 8, Column: Left, Row: Top},
				{ID: "dining", Width: 9.5, Length: 13, Column: Left, Row: Bottom},
				{ID: "study", Width: 11, Length: 8, Column: Right, Row: Top},
				{ID: "lounge", Width: 11, Length: 13, Column: Right, Row: Bottom},
			}
			s.Hall = HallSpec{Width: 10, Length: 21}
			return s
		}(),
		"fractional": func() BuildingSpec {
			s := Reference()
			s.Width, s.Length = 0.6, 0.3
			s.Rooms = []RoomSpec{
				{ID: "a", Width: 0.1, Length: 0.1, Column: Left, Row: Top},
				{ID: "b", Width: 0.1, Length: 0.2, Column: Left, Row: Bottom},
				{ID: "c", Width: 0.3, Length: 0.1, Column: Right, Row: Top},
				{ID: "d", Width: 0.3, Length: 0.2, Column: Right, Row: Bottom},
			}
			s.Hall = HallSpec{Width: 0.2, Length: 0.3}
			s.Stair = StairSpec{Width: 0.1, Length: 0.1, Treads: 2}
			return s
		}(),
	}

	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			fp, err := Layout(spec)
			if err != nil {
				t.Fatalf("Layout() error: %v", err)
			}

			var area float64
			spaces := fp.Spaces()
			for i, s := range spaces {
				area += s.Rect.Area()
				for _, o := range spaces[:i] {
					if ov := s.Rect.Overlap(o.Rect); ov > 1e-9 {
						t.Errorf("%s overlaps %s by %v", s.ID, o.ID, ov)
					}
				}
			}
			if want := fp.Footprint.Area(); math.Abs(area-want) > 1e-9 {
				t.Errorf("total area = %v, want %v", area, want)
			}
			if err := fp.Verify(); err != nil {
				t.Errorf("Verify() error: %v", err)
			}
		})
	}
}

func TestLayoutStairAnchors(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   geom.Rect
	}{
		{"", geom.R(11, 16, 6, 8)},
		{BottomLeft, geom.R(11, 16, 6, 8)},
		{BottomRight, geom.R(17, 16, 6, 8)},
		{TopLeft, geom.R(11, 0, 6, 8)},
		{TopRight, geom.R(17, 0, 6, 8)},
	}

	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			spec := Reference()
			spec.Stair.Anchor = tt.anchor
			fp, err := Layout(spec)
			if err != nil {
				t.Fatalf("Layout() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, fp.Stair.Rect); diff != "" {
				t.Errorf("stair mismatch (-want +got):\n%s", diff)
			}
			if !fp.Hall.Rect.Contains(fp.Stair.Rect) {
				t.Errorf("stair %v not inside hall %v", fp.Stair.Rect, fp.Hall.Rect)
			}
		})
	}
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BuildingSpec)
		want   errors.Code
	}{
		{"width off by one", func(s *BuildingSpec) { s.Width = 33 }, errors.ErrCodeInconsistentPartition},
		{"length off", func(s *BuildingSpec) { s.Length = 25 }, errors.ErrCodeInconsistentPartition},
		{"hall too short", func(s *BuildingSpec) { s.Hall.Length = 20 }, errors.ErrCodeInconsistentPartition},
		{"column widths differ", func(s *BuildingSpec) { s.Rooms[1].Width = 10 }, errors.ErrCodeInconsistentPartition},
		{"row lengths differ", func(s *BuildingSpec) { s.Rooms[2].Length = 10 }, errors.ErrCodeInconsistentPartition},
		{"missing room", func(s *BuildingSpec) { s.Rooms = s.Rooms[:3] }, errors.ErrCodeInconsistentPartition},
		{"two rooms in a cell", func(s *BuildingSpec) { s.Rooms[1].Row = Top }, errors.ErrCodeInconsistentPartition},
		{"room in center column", func(s *BuildingSpec) { s.Rooms[0].Column = Center }, errors.ErrCodeInconsistentPartition},
		{"unknown row", func(s *BuildingSpec) { s.Rooms[0].Row = "middle" }, errors.ErrCodeInconsistentPartition},
		{"duplicate id", func(s *BuildingSpec) { s.Rooms[1].ID = s.Rooms[0].ID }, errors.ErrCodeInvalidInput},
		{"zero width", func(s *BuildingSpec) { s.Width = 0 }, errors.ErrCodeInvalidSpan},
		{"negative room", func(s *BuildingSpec) { s.Rooms[0].Length = -12 }, errors.ErrCodeInvalidSpan},
		{"NaN hall", func(s *BuildingSpec) { s.Hall.Width = geom.Length(math.NaN()) }, errors.ErrCodeInvalidSpan},
		{"negative margin", func(s *BuildingSpec) { s.Margin = -1 }, errors.ErrCodeInvalidSpan},
		{"stair too wide", func(s *BuildingSpec) { s.Stair.Width = 13 }, errors.ErrCodeStairOutOfBounds},
		{"stair too long", func(s *BuildingSpec) { s.Stair.Length = 25 }, errors.ErrCodeStairOutOfBounds},
		{"zero treads", func(s *BuildingSpec) { s.Stair.Treads = 0 }, errors.ErrCodeInvalidTreadCount},
		{"bad anchor", func(s *BuildingSpec) { s.Stair.Anchor = "middle" }, errors.ErrCodeInvalidInput},
		{"id with spaces", func(s *BuildingSpec) { s.Rooms[0].ID = "left top" }, errors.ErrCodeInvalidInput},
		{"id with markup", func(s *BuildingSpec) { s.Rooms[0].ID = `x"/><script>` }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Reference()
			tt.mutate(&spec)
			fp, err := Layout(spec)
			if err == nil {
				t.Fatalf("Layout() = %v, want error %s", fp, tt.want)
			}
			if fp != nil {
				t.Errorf("Layout() returned partial plan alongside error")
			}
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("GetCode() = %s, want %s (err: %v)", got, tt.want, err)
			}
		})
	}
}

func TestLayoutStairFillsHall(t *testing.T) {
	spec := Reference()
	spec.Stair.Width, spec.Stair.Length = 12, 24
	fp, err := Layout(spec)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if diff := cmp.Diff(fp.Hall.Rect, fp.Stair.Rect); diff != "" {
		t.Errorf("stair should equal hall (-want +got):\n%s", diff)
	}
}

func TestLayoutFractionalSpans(t *testing.T) {
	spec := Reference()
	spec.Width = 34.3
	spec.Hall.Width = 12.1
	for i := range spec.Rooms {
		spec.Rooms[i].Width = 11.1
	}

	fp, err := Layout(spec)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if err := fp.Verify(); err != nil {
		t.Errorf("Verify() error: %v", err)
	}

	spec.Width = 34.31
	if _, err := Layout(spec); !errors.Is(err, errors.ErrCodeInconsistentPartition) {
		t.Errorf("Layout() with a 0.01 ft gap error = %v, want INCONSISTENT_PARTITION", err)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	a, err := Layout(Reference())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Layout(Reference())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Layout() not deterministic (-first +second):\n%s", diff)
	}
}

func TestVerifyRejectsTamperedPlan(t *testing.T) {
	fp, err := Layout(Reference())
	if err != nil {
		t.Fatal(err)
	}

	overlap := *fp
	overlap.Rooms = append([]PlacedRoom(nil), fp.Rooms...)
	overlap.Rooms[0].Rect.Width = 12
	if err := overlap.Verify(); !errors.Is(err, errors.ErrCodeInconsistentPartition) {
		t.Errorf("Verify() with overlap = %v, want INCONSISTENT_PARTITION", err)
	}

	stair := *fp
	stair.Stair.Rect = geom.R(20, 16, 6, 8)
	if err := stair.Verify(); !errors.Is(err, errors.ErrCodeStairOutOfBounds) {
		t.Errorf("Verify() with stair outside hall = %v, want STAIR_OUT_OF_BOUNDS", err)
	}
}

func TestPlanRoomLookup(t *testing.T) {
	fp, err := Layout(Reference())
	if err != nil {
		t.Fatal(err)
	}
	r, ok := fp.Room("right-bottom")
	if !ok {
		t.Fatal("Room(right-bottom) not found")
	}
	if r.Rect != geom.R(23, 12, 11, 12) {
		t.Errorf("Room(right-bottom).Rect = %v, want {{23 12} 11 12}", r.Rect)
	}
	if _, ok := fp.Room("attic"); ok {
		t.Error("Room(attic) should not exist")
	}
}

func ExampleLayout() {
	fp, err := Layout(Reference())
	if err != nil {
		panic(err)
	}
	for _, s := range fp.Spaces() {
		fmt.Printf("%-12s x=%v y=%v %vx%v\n", s.ID, s.Rect.X(), s.Rect.Y(), s.Rect.Width, s.Rect.Height)
	}
	fmt.Println("stair", fp.Stair.Rect.Origin)
	// Output:
	// left-top     x=0 y=0 11x12
	// left-bottom  x=0 y=12 11x12
	// right-top    x=23 y=0 11x12
	// right-bottom x=23 y=12 11x12
	// hall         x=11 y=0 12x24
	// stair {11 16}
}
