package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/floorplan/pkg/layout"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces trimmed", "svg, json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"from spec input", "", "plans/house.toml", "plans/house"},
		{"from layout input", "", "plans/house.layout.json", "plans/house"},
		{"output with format ext", "out/drawing.svg", "house.toml", "out/drawing"},
		{"output without ext", "out/drawing", "house.toml", "out/drawing"},
		{"output with other ext", "out/drawing.v2", "house.toml", "out/drawing.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestLayoutPath(t *testing.T) {
	if got := layoutPath("", "plans/house.yaml"); got != "plans/house.layout.json" {
		t.Errorf("layoutPath() = %q", got)
	}
	if got := layoutPath("x.json", "plans/house.yaml"); got != "x.json" {
		t.Errorf("layoutPath() with output = %q", got)
	}
}

func TestArtifactPath(t *testing.T) {
	p := artifactWriteParams{formats: []string{"svg"}, input: "house.toml", output: "drawing.svg"}
	if got := artifactPath(p, "svg"); got != "drawing.svg" {
		t.Errorf("single format with output = %q, want drawing.svg", got)
	}

	p = artifactWriteParams{formats: []string{"svg", "png"}, input: "house.toml", output: "drawing.svg"}
	if got := artifactPath(p, "png"); got != "drawing.png" {
		t.Errorf("multiple formats = %q, want drawing.png", got)
	}

	p = artifactWriteParams{formats: []string{"svg"}, input: "house.toml", vizType: layout.VizTypeAdjacency}
	if got := artifactPath(p, "svg"); got != "house.adjacency.svg" {
		t.Errorf("adjacency = %q, want house.adjacency.svg", got)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>"), "json": []byte("{}")},
		formats:   []string{"svg", "json"},
		input:     filepath.Join(dir, "house.toml"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	want := []string{filepath.Join(dir, "house.svg"), filepath.Join(dir, "house.json")}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	data, err := os.ReadFile(want[0])
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("svg file = %q, %v", data, err)
	}

	_, err = writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{},
		formats:   []string{"pdf"},
		input:     filepath.Join(dir, "house.toml"),
	})
	if err == nil {
		t.Error("missing artifact should fail")
	}
}
