package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// layoutSuffix marks layout documents written by the layout command.
const layoutSuffix = ".layout.json"

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	vizType   string
	input     string
	output    string
}

// writeArtifacts writes each artifact to disk and returns the paths in
// format order. A single format honours output verbatim; several formats
// share the base path derived from output or input.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return paths, fmt.Errorf("no %s artifact was rendered", format)
		}
		path := artifactPath(p, format)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return paths, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func artifactPath(p artifactWriteParams, format string) string {
	if p.output != "" && len(p.formats) == 1 {
		return p.output
	}
	base := basePath(p.output, p.input)
	if p.vizType == layout.VizTypeAdjacency {
		base += "." + layout.VizTypeAdjacency
	}
	return base + "." + format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension (or .layout.json) from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if strings.HasSuffix(input, layoutSuffix) {
			return strings.TrimSuffix(input, layoutSuffix)
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// layoutPath is the default layout document path for a spec file.
func layoutPath(output, input string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + layoutSuffix
}
