// Package api serves the floorplan pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz     liveness probe, {"status":"ok"}
//	POST /v1/layout   building spec JSON in, layout result JSON out
//	POST /v1/render   building spec JSON in, one rendered artifact out
//
// /v1/render reads its render options from the query string: format
// (svg, png, pdf, json), type (plan, adjacency), style, scale, zoom, and
// north=false / notes=false to drop the north indicator or the notes.
//
// Errors are JSON objects with a machine-readable code:
//
//	{"code": "INCONSISTENT_PARTITION", "message": "left column ..."}
//
// Every response carries an X-Request-ID header.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/floorplan/pkg/errors"
	specio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// MaxSpecBytes bounds request bodies. Building specs are a few hundred bytes.
const MaxSpecBytes = 1 << 20

// RequestTimeout bounds the time spent on one request.
const RequestTimeout = 30 * time.Second

// Server routes HTTP requests to a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a Server. A nil logger discards output.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "no route for %s %s", r.Method, r.URL.Path), http.StatusNotFound)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// layoutResponse is a pipeline result without artifacts.
type layoutResponse struct {
	pipeline.Result
	Title string `json:"title"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	spec, err := readSpec(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	opts := pipeline.Options{Logger: s.logger}
	start := time.Now()
	l, hit, err := s.runner.ComputeWithCacheInfo(r.Context(), spec, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Result: pipeline.Result{
			Layout:   l,
			SpecHash: pipeline.SpecHash(spec),
			Stats: pipeline.Stats{
				Rooms:      len(l.Plan.Rooms),
				Area:       l.Plan.Footprint.Area(),
				LayoutTime: time.Since(start),
			},
			CacheInfo: pipeline.CacheInfo{LayoutHit: hit},
		},
		Title: l.Title(),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	spec, err := readSpec(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	opts.Logger = s.logger
	res, err := s.runner.Execute(r.Context(), spec, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Spec-Hash", res.SpecHash)
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// renderOptions reads render options from the query string. Spans are
// checked here because the pipeline reads zero as unset; everything else is
// validated by the pipeline.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		VizType: q.Get("type"),
		Style:   q.Get("style"),
	}
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}

	var err error
	if opts.Scale, err = spanParam(q, "scale", pipeline.DefaultScale); err != nil {
		return opts, err
	}
	if opts.Zoom, err = spanParam(q, "zoom", pipeline.DefaultZoom); err != nil {
		return opts, err
	}
	if v := q.Get("north"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "north must be a boolean, got %q", v)
		}
		opts.HideNorth = !show
	}
	if v := q.Get("notes"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "notes must be a boolean, got %q", v)
		}
		opts.HideNotes = !show
	}
	return opts, nil
}

// spanParam parses a positive number, falling back to def only when the
// parameter is absent.
func spanParam(q url.Values, name string, def float64) (float64, error) {
	if !q.Has(name) {
		return def, nil
	}
	v := q.Get(name)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, v)
	}
	if err := errors.ValidateSpan(name, f); err != nil {
		return 0, err
	}
	return f, nil
}

// readSpec decodes the request body as a JSON building spec.
func readSpec(w http.ResponseWriter, r *http.Request) (plan.BuildingSpec, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxSpecBytes))
	if err != nil {
		return plan.BuildingSpec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return specio.ParseSpec(data, specio.FormatJSON)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFrom(r.Context()), "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("request rejected", "id", RequestIDFrom(r.Context()), "path", r.URL.Path, "err", err)
	}
	writeError(w, err, status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
