package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event as a debug log line.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

// Register installs h for every hook category.
func (h *LogHooks) Register() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetServerHooks(h)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, building string, rooms int) {
	h.Logger.Debug("layout started", "building", building, "rooms", rooms)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, building string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("layout failed", "building", building, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("layout complete", "building", building, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, vizType string, formats []string) {
	h.Logger.Debug("render started", "type", vizType, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, vizType string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "type", vizType, "formats", formats, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("render complete", "type", vizType, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.Logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}
