// Package server exposes palette generation, reports, exports and history
// over a small JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leonardotrapani/chromagen/internal/history"
	"github.com/leonardotrapani/chromagen/internal/pipeline"
	"github.com/leonardotrapani/chromagen/internal/ui"
)

const (
	DefaultListen = "127.0.0.1:8080"
	// maxBodyBytes bounds request bodies; generate requests carry an image.
	maxBodyBytes    = 10 << 20
	shutdownTimeout = 5 * time.Second
)

type Config struct {
	Listen     string
	CORSOrigin string
	Metrics    bool
	// Timeout bounds one generate request including the model call.
	Timeout time.Duration
	// LogRequests prints one status line per request.
	LogRequests bool
}

// HistoryLister is the read side of the history store.
type HistoryLister interface {
	List() ([]history.Entry, error)
}

type Server struct {
	cfg      Config
	pipeline *pipeline.Pipeline
	history  HistoryLister
	metrics  *metrics
	mux      *http.ServeMux
}

// New wires the routes. history may be nil, in which case /api/history
// returns an empty list.
func New(cfg Config, p *pipeline.Pipeline, hist HistoryLister) *Server {
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	s := &Server{
		cfg:      cfg,
		pipeline: p,
		history:  hist,
		metrics:  newMetrics(p.Cache()),
		mux:      http.NewServeMux(),
	}

	s.handle("POST /api/generate", s.handleGenerate)
	s.handle("GET /api/palette", s.handlePalette)
	s.handle("POST /api/report", s.handleReport)
	s.handle("POST /api/export/{format}", s.handleExport)
	s.handle("GET /api/templates/{name}", s.handleTemplate)
	s.handle("GET /api/history", s.handleHistory)
	s.handle("GET /api/name/{hex}", s.handleName)
	s.handle("OPTIONS /api/", s.handlePreflight)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	if cfg.Metrics {
		s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) Addr() string {
	return s.cfg.Listen
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server: listening on %s", s.cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", s.cfg.Listen, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handle(pattern string, h http.HandlerFunc) {
	s.mux.Handle(pattern, s.instrument(pattern, h))
}

// statusRecorder captures the status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(route string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.setCORS(w)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)

		elapsed := time.Since(start)
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		s.metrics.duration.WithLabelValues(route).Observe(elapsed.Seconds())
		if s.cfg.LogRequests {
			ui.LogRequest(r.Method, r.URL.Path, rec.status, elapsed)
		}
	})
}

func (s *Server) setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", s.cfg.CORSOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
