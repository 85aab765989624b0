// Package api exposes diagram rendering over HTTP.
//
// One endpoint does the work: POST /v1/diagrams accepts the producer's
// JSON payload and responds with the rendered artifact in the requested
// format. Rendering is deterministic, so responses are memoized in a
// pluggable artifact cache keyed by payload hash, profile, and format.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/rcakit/ishikawa/pkg/cache"
	"github.com/rcakit/ishikawa/pkg/diagram"
	"github.com/rcakit/ishikawa/pkg/errors"
	"github.com/rcakit/ishikawa/pkg/profile"
	"github.com/rcakit/ishikawa/pkg/render/fishbone"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/layout"
	"github.com/rcakit/ishikawa/pkg/render/fishbone/sink"
	"github.com/rcakit/ishikawa/pkg/render/nodelink"
)

// maxBodyBytes caps request payloads. Diagram inputs are a few KB of text;
// anything near a megabyte is not a diagram.
const maxBodyBytes = 1 << 20

// contentTypes maps output formats to their MIME types.
var contentTypes = map[string]string{
	"svg":  "image/svg+xml",
	"json": "application/json",
	"png":  "image/png",
	"pdf":  "application/pdf",
	"dot":  "text/vnd.graphviz",
}

// Server handles diagram rendering requests.
type Server struct {
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithCacheTTL sets the artifact cache TTL. Zero means no expiration.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Server) { s.cacheTTL = ttl }
}

// NewServer creates a Server. A nil cache disables memoization; a nil
// logger falls back to the default logger.
func NewServer(c cache.Cache, logger *log.Logger, opts ...Option) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{cache: c, cacheTTL: 24 * time.Hour, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.health)
	r.Post("/v1/diagrams", s.createDiagram)
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}

// createDiagram renders the posted input in the requested format.
func (s *Server) createDiagram(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	if _, ok := contentTypes[format]; !ok {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %q", format))
		return
	}

	profileName := r.URL.Query().Get("profile")
	if profileName == "" {
		profileName = "detailed"
	}
	p, err := profile.ByName(profileName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	in, err := diagram.DecodeBytes(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	key := cache.ArtifactKey(body, p.Name, format)
	if data, ok, cerr := s.cache.Get(r.Context(), key); cerr == nil && ok {
		s.serveArtifact(w, format, data, "hit")
		return
	} else if cerr != nil {
		s.logger.Warn("artifact cache get failed", "err", cerr)
	}

	data, err := s.renderArtifact(in, p, format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format))
		return
	}

	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		s.logger.Warn("artifact cache set failed", "err", err)
	}
	s.serveArtifact(w, format, data, "miss")
}

func (s *Server) renderArtifact(in diagram.Input, p profile.Profile, format string) ([]byte, error) {
	switch format {
	case "json":
		return fishbone.BuildDocument(in.Effect, in.Categories, fishbone.WithProfile(p))
	case "dot":
		norm := fishbone.Normalize(in.Effect, in.Categories)
		return []byte(nodelink.ToDOT(norm)), nil
	case "png":
		norm := fishbone.Normalize(in.Effect, in.Categories)
		return sink.RenderPNG(layout.Compute(norm, p), p)
	case "pdf":
		norm := fishbone.Normalize(in.Effect, in.Categories)
		return sink.RenderPDF(layout.Compute(norm, p), p)
	default:
		return fishbone.Build(in.Effect, in.Categories, fishbone.WithProfile(p)).SVG, nil
	}
}

func (s *Server) serveArtifact(w http.ResponseWriter, format string, data []byte, cacheState string) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheState)
	_, _ = w.Write(data)
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	var resp errorResponse
	resp.Error.Code = string(errors.GetCode(err))
	if resp.Error.Code == "" {
		resp.Error.Code = string(errors.ErrCodeInternal)
	}
	resp.Error.Message = errors.UserMessage(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
