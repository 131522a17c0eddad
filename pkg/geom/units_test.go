package geom

import "testing"

func TestToPixels(t *testing.T) {
	tests := []struct {
		l     Length
		scale float64
		want  float64
	}{
		{34, 20, 680},
		{1.5, 20, 30},
		{0, 20, 0},
		{11, 0.5, 5.5},
	}

	for _, tt := range tests {
		if got := ToPixels(tt.l, tt.scale); got != tt.want {
			t.Errorf("ToPixels(%v, %v) = %v, want %v", tt.l, tt.scale, got, tt.want)
		}
	}
}

func TestToPixelsLinear(t *testing.T) {
	// Values are dyadic so float addition stays exact.
	lengths := []Length{0, 0.5, 1.5, 4, 11, 12, 24, 34}
	scales := []float64{0.25, 1, 8, 20, 64}

	for _, s := range scales {
		for _, a := range lengths {
			if got, want := ToPixels(a, s), float64(a)*s; got != want {
				t.Errorf("ToPixels(%v, %v) = %v, want %v", a, s, got, want)
			}
			for _, b := range lengths {
				sum := ToPixels(a+b, s)
				parts := ToPixels(a, s) + ToPixels(b, s)
				if sum != parts {
					t.Errorf("ToPixels(%v+%v, %v) = %v, want %v", a, b, s, sum, parts)
				}
			}
		}
	}
}

func TestScale(t *testing.T) {
	s := Scale(20)
	if got := s.Px(11); got != 220 {
		t.Errorf("Px(11) = %v, want 220", got)
	}
	if got := s.PxInt(0.33); got != 7 {
		t.Errorf("PxInt(0.33) = %v, want 7", got)
	}
	x, y := s.Point(Pt(4, 4), Pt(11, 16))
	if x != 300 || y != 400 {
		t.Errorf("Point() = (%v, %v), want (300, 400)", x, y)
	}
}

func TestFormatFeet(t *testing.T) {
	tests := []struct {
		l    Length
		want string
	}{
		{34, "34'"},
		{12.5, "12.5'"},
		{0, "0'"},
		{1.25, "1.25'"},
	}

	for _, tt := range tests {
		if got := FormatFeet(tt.l); got != tt.want {
			t.Errorf("FormatFeet(%v) = %q, want %q", tt.l, got, tt.want)
		}
	}
}

func TestFormatFeetInches(t *testing.T) {
	tests := []struct {
		l    Length
		want string
	}{
		{11.5, `11'-6"`},
		{11, `11'-0"`},
		{0.25, `0'-3"`},
		{8 + 11.0/12, `8'-11"`},
	}

	for _, tt := range tests {
		if got := FormatFeetInches(tt.l); got != tt.want {
			t.Errorf("FormatFeetInches(%v) = %q, want %q", tt.l, got, tt.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	if got := FormatSize(12, 11); got != "12' × 11'" {
		t.Errorf("FormatSize(12, 11) = %q", got)
	}
}
