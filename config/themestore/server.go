package themestore

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/kastheco/orgtheme/internal/chart"
	"github.com/kastheco/orgtheme/internal/metrics"
	"github.com/kastheco/orgtheme/theme"
	"go.uber.org/zap"
)

// Option configures NewHandler.
type Option func(*server)

// WithLogger sets the access and error logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *server) { s.log = l }
}

// WithMetrics counts requests and derivations and serves GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *server) { s.metrics = m }
}

// WithDefaultTheme sets the theme derived for organizations without one.
func WithDefaultTheme(t theme.Theme) Option {
	return func(s *server) { s.fallback = t }
}

type server struct {
	store    Store
	log      *zap.Logger
	metrics  *metrics.Metrics
	fallback theme.Theme
}

// NewHandler returns an http.Handler that exposes the Store and the theme
// derivations over HTTP. It uses Go 1.22+ ServeMux pattern matching for
// method+path routing.
func NewHandler(store Store, opts ...Option) http.Handler {
	s := &server{store: store, log: zap.NewNop(), fallback: theme.Default()}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, s.instrument(pattern, h))
	}

	handle("GET /v1/ping", s.ping)
	handle("GET /v1/orgs", s.list)
	handle("GET /v1/orgs/{org}/theme", s.get)
	handle("PUT /v1/orgs/{org}/theme", s.put)
	handle("DELETE /v1/orgs/{org}/theme", s.delete)
	handle("GET /v1/orgs/{org}/theme/derived", s.derived)
	handle("GET /v1/orgs/{org}/theme/chart.png", s.chartPreview)
	handle("GET /v1/derive", s.derive)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	return mux
}

func (s *server) ping(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(); err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *server) list(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *server) get(w http.ResponseWriter, r *http.Request) {
	org := r.PathValue("org")
	entry, err := s.store.Get(org)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "theme not found: "+org)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *server) put(w http.ResponseWriter, r *http.Request) {
	var t theme.Theme
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := t.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entry, err := s.store.Put(Entry{Org: r.PathValue("org"), Accent: t.Accent, Mode: t.Mode})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *server) delete(w http.ResponseWriter, r *http.Request) {
	org := r.PathValue("org")
	if err := s.store.Delete(org); err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "theme not found: "+org)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// themeFor returns the org's stored theme, or the fallback when it has none.
func (s *server) themeFor(org string) (theme.Theme, error) {
	entry, err := s.store.Get(org)
	if errors.Is(err, ErrNotFound) {
		return s.fallback, nil
	}
	if err != nil {
		return theme.Theme{}, err
	}
	return entry.Theme(), nil
}

func (s *server) derived(w http.ResponseWriter, r *http.Request) {
	t, err := s.themeFor(r.PathValue("org"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.metrics.ObserveDerivation("bundle")
	writeJSON(w, http.StatusOK, t.Derive())
}

func (s *server) chartPreview(w http.ResponseWriter, r *http.Request) {
	t, err := s.themeFor(r.PathValue("org"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	png, err := chart.PreviewPNG(theme.Palette(t.Accent))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.metrics.ObserveDerivation("chart")
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// DeriveResponse is the body of GET /v1/derive.
type DeriveResponse struct {
	Color        theme.Color         `json:"color"`
	Adjusted     theme.AdjustedColor `json:"adjusted"`
	Palette      theme.ChartPalette  `json:"palette"`
	ContrastText theme.Color         `json:"contrast_text"`
	Gradient     string              `json:"gradient"`
}

func (s *server) derive(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := theme.Parse(q.Get("color"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount := 0
	if v := q.Get("amount"); v != "" {
		if amount, err = strconv.Atoi(v); err != nil {
			writeError(w, http.StatusBadRequest, "amount must be an integer")
			return
		}
	}
	opacity := 1.0
	if v := q.Get("opacity"); v != "" {
		if opacity, err = strconv.ParseFloat(v, 64); err != nil {
			writeError(w, http.StatusBadRequest, "opacity must be a number")
			return
		}
	}

	s.metrics.ObserveDerivation("adjust")
	writeJSON(w, http.StatusOK, DeriveResponse{
		Color:        c,
		Adjusted:     theme.Adjust(c, amount, opacity),
		Palette:      theme.Palette(c),
		ContrastText: theme.ContrastText(c),
		Gradient:     theme.GradientCSS(c, opacity),
	})
}

// statusRecorder captures the status code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument tags each request with an X-Request-ID, logs it and counts it
// under its route pattern.
func (s *server) instrument(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.metrics.ObserveRequest(pattern, rec.status)
		s.log.Info("request",
			zap.String("request_id", id),
			zap.String("route", pattern),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// writeJSON encodes v as JSON and writes it to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
