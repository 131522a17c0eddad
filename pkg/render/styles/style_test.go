package styles

import (
	"strings"
	"testing"

	"github.com/matzehuels/floorplan/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"blueprint", false},
		{"print", false},
		{"Blueprint", true}, // case-sensitive
		{"handdrawn", true},
		{"", true},
	}

	for _, tt := range tests {
		s, err := Lookup(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("Lookup(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidStyle) {
				t.Errorf("Lookup(%q) code = %s, want INVALID_STYLE", tt.name, errors.GetCode(err))
			}
			continue
		}
		if s.Name != tt.name {
			t.Errorf("Lookup(%q).Name = %q", tt.name, s.Name)
		}
	}
}

func TestNames(t *testing.T) {
	if got := strings.Join(Names(), ","); got != "blueprint,print" {
		t.Errorf("Names() = %q, want blueprint,print", got)
	}
}

func TestCSSDeclarations(t *testing.T) {
	for _, s := range []Style{Blueprint, Print} {
		t.Run(s.Name, func(t *testing.T) {
			decls := []string{
				s.OutlineCSS(), s.SpaceCSS(), s.StairCSS(), s.StepCSS(), s.DimLineCSS(),
				s.LabelCSS(), s.SubLabelCSS(), s.DimTextCSS(), s.NoteCSS(), s.NorthCSS(), s.NorthTextCSS(),
			}
			for _, d := range decls {
				// svgo treats any argument containing "=" as a raw attribute.
				if strings.Contains(d, "=") || strings.Contains(d, `"`) {
					t.Errorf("declaration %q would not be emitted as a style attribute", d)
				}
			}
			if !strings.Contains(s.OutlineCSS(), "fill:none") {
				t.Errorf("OutlineCSS() = %q, outline must not cover the rooms", s.OutlineCSS())
			}
		})
	}
}
