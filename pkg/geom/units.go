package geom

import (
	"fmt"
	"math"
)

// ToPixels converts a length in feet to canvas units at scale pixels per foot.
// scale must be > 0; it is validated once when rendering options are built.
func ToPixels(l Length, scale float64) float64 {
	return float64(l) * scale
}

// Scale is a pixels-per-foot factor.
type Scale float64

// Px converts l to pixels.
func (s Scale) Px(l Length) float64 { return ToPixels(l, float64(s)) }

// PxInt converts l to whole pixels, rounding half away from zero.
func (s Scale) PxInt(l Length) int { return int(math.Round(s.Px(l))) }

// Point converts p to pixel coordinates relative to origin (in feet), which
// is where the plan's (0,0) lands on the canvas.
func (s Scale) Point(origin, p Point) (x, y float64) {
	return s.Px(origin.X + p.X), s.Px(origin.Y + p.Y)
}

// FormatFeet renders l as a feet string: 34' or 12.5'.
func FormatFeet(l Length) string {
	return fmt.Sprintf("%s'", trimFloat(float64(l)))
}

// FormatFeetInches renders l as feet and whole inches: 11'-6". Whole feet
// are rendered as 11'-0".
func FormatFeetInches(l Length) string {
	total := int(math.Round(float64(l) * 12))
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%d'-%d\"", sign, total/12, total%12)
}

// FormatSize renders a length × width size string: 12' × 11'.
func FormatSize(a, b Length) string {
	return FormatFeet(a) + " × " + FormatFeet(b)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		return "0"
	}
	return s
}
