// Package cache stores computed layouts and rendered artifacts.
//
// # Backends
//
//   - [NullCache]: caching disabled
//   - [FileCache]: one JSON file per entry under a directory (CLI)
//   - [RedisCache]: a shared Redis instance (HTTP server)
//
// # Keys
//
// A [Keyer] derives keys from content hashes. Layout keys hash the building
// spec together with the annotation options; artifact keys hash the layout
// document together with the render options. Equal inputs always map to the
// same key, so a cached entry never needs invalidation, only expiry.
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(cache.Hash(layoutJSON), cache.ArtifactKeyOpts{Format: "svg", Style: "blueprint", Scale: 20})
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend's resources.
	Close() error
}

// Entry lifetimes.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Keyer generates cache keys.
type Keyer interface {
	LayoutKey(specHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the inputs besides the spec that change a layout.
type LayoutKeyOpts struct {
	Standoff float64 `json:"standoff"`
	CaptionX float64 `json:"caption_x"`
	CaptionY float64 `json:"caption_y"`
}

// ArtifactKeyOpts are the inputs besides the layout that change an artifact.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	VizType   string  `json:"viz_type"`
	Style     string  `json:"style"`
	Scale     float64 `json:"scale"`
	Zoom      float64 `json:"zoom,omitempty"`
	ShowNorth bool    `json:"show_north"`
	ShowNotes bool    `json:"show_notes"`
}

// DefaultKeyer generates unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (DefaultKeyer) LayoutKey(specHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", specHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
