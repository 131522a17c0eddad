package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, spec plan.BuildingSpec, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		SpecHash:  SpecHash(spec),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.ComputeWithCacheInfo(ctx, spec, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Rooms = len(l.Plan.Rooms)
	result.Stats.Area = l.Plan.Footprint.Area()
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"rooms", result.Stats.Rooms,
		"area", result.Stats.Area,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"type", opts.VizType,
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeWithCacheInfo lays out spec with caching and returns cache hit info.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, spec plan.BuildingSpec, opts Options) (layout.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, false, err
	}

	cacheKey := r.Keyer.LayoutKey(SpecHash(spec), opts.LayoutKeyOpts())

	// Try cache first
	if !opts.NoCache {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := layout.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil // Cache hit
			}
			// A document that no longer verifies is recomputed
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, spec.Name, len(spec.Rooms))
	start := time.Now()
	l, err := layout.Compute(spec, opts.LayoutOptions()...)
	hooks.OnLayoutComplete(ctx, spec.Name, time.Since(start), err)
	if err != nil {
		return layout.Layout{}, false, err
	}

	// Cache the result
	if !opts.NoCache {
		if data, err := layout.Marshal(l); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
				opts.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
			} else {
				observability.Cache().OnCacheSet(ctx, "layout", len(data))
			}
		}
	}

	return l, false, nil // Cache miss
}

// Compute is a convenience wrapper that calls ComputeWithCacheInfo and discards the cache hit info.
func (r *Runner) Compute(ctx context.Context, spec plan.BuildingSpec, opts Options) (layout.Layout, error) {
	l, _, err := r.ComputeWithCacheInfo(ctx, spec, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	// Compute cache key from layout data
	layoutData, err := layout.Marshal(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	if !opts.NoCache {
		artifacts := make(map[string][]byte)
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Render all formats
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.VizType, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, l, opts)
	hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	if !opts.NoCache {
		for format, data := range rendered {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err != nil {
				opts.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
				continue
			}
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// SpecHash returns the content hash of a building spec. Specs that decode to
// the same values hash the same regardless of their source format.
func SpecHash(spec plan.BuildingSpec) string {
	data, _ := json.Marshal(spec)
	return cache.Hash(data)
}
