// Package pipeline provides the layout → render pipeline for floorplan.
//
// The CLI and the HTTP API both run building specs through this package, so
// defaults, validation and caching behave the same at every entry point.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Layout: place rooms, hall and stair and compute the annotation geometry
//  2. Render: draw the layout as SVG, PNG, PDF or a JSON layout document
//
// Layout is pure and never fails half way: a spec either produces a verified
// plan or a configuration error. Rendering only reads the layout.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, spec, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	    Style:   "print",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	l, err := runner.Compute(ctx, spec, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/annotate"
	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/render/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the default drawing scale in pixels per foot.
	DefaultScale = 20.0

	// DefaultZoom is the default raster zoom for PNG output.
	DefaultZoom = 2.0

	// DefaultVizType is the default visualization type.
	DefaultVizType = layout.VizTypePlan

	// DefaultStyle is the default visual style.
	DefaultStyle = layout.StyleBlueprint
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	layout.VizTypePlan:      true,
	layout.VizTypeAdjacency: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options. Nil means the annotation default.
	Standoff      *float64    `json:"standoff,omitempty"`
	CaptionOffset *geom.Point `json:"caption_offset,omitempty"`

	// Render options
	VizType   string   `json:"viz_type,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	Style     string   `json:"style,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	Zoom      float64  `json:"zoom,omitempty"`
	HideNorth bool     `json:"hide_north,omitempty"`
	HideNotes bool     `json:"hide_notes,omitempty"`

	// NoCache bypasses cache reads and writes.
	NoCache bool `json:"no_cache,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the verified plan with its annotations.
	Layout layout.Layout `json:"layout"`

	// SpecHash is the content hash of the building spec.
	SpecHash string `json:"spec_hash"`

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte `json:"-"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats"`

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo `json:"cache"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rooms      int           `json:"rooms"`
	Area       float64       `json:"area"`
	LayoutTime time.Duration `json:"layout_time"`
	RenderTime time.Duration `json:"render_time"`
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool `json:"layout_hit"` // Whether the layout came from cache
	RenderHit bool `json:"render_hit"` // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := styles.Lookup(style)
	return err
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: plan, adjacency)", vizType)
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates options for the full
// pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Standoff == nil {
		d := float64(annotate.DefaultStandoff)
		o.Standoff = &d
	}
	if o.CaptionOffset == nil {
		p := annotate.DefaultCaptionOffset
		o.CaptionOffset = &p
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout sets layout defaults and validates the layout options.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidateDistance("standoff", *o.Standoff); err != nil {
		return err
	}
	if err := errors.ValidateOffset("caption offset x", float64(o.CaptionOffset.X)); err != nil {
		return err
	}
	return errors.ValidateOffset("caption offset y", float64(o.CaptionOffset.Y))
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Zoom == 0 {
		o.Zoom = DefaultZoom
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender sets render defaults and validates the render options.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := errors.ValidateSpan("scale", o.Scale); err != nil {
		return err
	}
	return errors.ValidateSpan("zoom", o.Zoom)
}

// IsAdjacency returns true if this is an adjacency visualization.
func (o *Options) IsAdjacency() bool {
	return o.VizType == layout.VizTypeAdjacency
}

// LayoutOptions converts the layout settings to [layout.Option] values.
func (o *Options) LayoutOptions() []layout.Option {
	var opts []layout.Option
	if o.Standoff != nil {
		opts = append(opts, layout.WithStandoff(geom.Length(*o.Standoff)))
	}
	if o.CaptionOffset != nil {
		opts = append(opts, layout.WithCaptionOffset(*o.CaptionOffset))
	}
	return opts
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	k := cache.LayoutKeyOpts{}
	if o.Standoff != nil {
		k.Standoff = *o.Standoff
	}
	if o.CaptionOffset != nil {
		k.CaptionX = float64(o.CaptionOffset.X)
		k.CaptionY = float64(o.CaptionOffset.Y)
	}
	return k
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:    format,
		VizType:   o.VizType,
		Style:     o.Style,
		Scale:     o.Scale,
		ShowNorth: !o.HideNorth,
		ShowNotes: !o.HideNotes,
	}
	if format == FormatPNG {
		k.Zoom = o.Zoom
	}
	return k
}
