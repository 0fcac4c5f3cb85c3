// Package server exposes the position-code conversions over HTTP.
//
// Routes:
//
//	POST /v1/unrank                 {"code": [...], "family": "..."}
//	POST /v1/rank                   {"permutation": [...], "family": "..."}
//	GET  /v1/lookup/value-at        ?code=0,1,1,2&k=1
//	GET  /v1/lookup/position-of     ?code=0,1,1,2&x=3
//	GET  /v1/enumerate/{n}          ?limit=...
//	GET  /healthz
//
// Validation failures are answered with 400 and a {"code", "message"} body
// carrying the error code. Every request works on its own buffers and
// workspace, so handlers are safe for concurrent use.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/poscode/pkg/observability"
)

const (
	// MaxEnumerateSize caps GET /v1/enumerate/{n}; 10! permutations is
	// already a multi-megabyte response.
	MaxEnumerateSize = 10

	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	Logger *log.Logger
}

// New creates a server. A nil logger falls back to log.Default().
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{Logger: logger}
}

// Handler returns the router with all routes and middleware installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/unrank", s.handleUnrank)
		r.Post("/rank", s.handleRank)
		r.Route("/lookup", func(r chi.Router) {
			r.Get("/value-at", s.handleValueAt)
			r.Get("/position-of", s.handlePositionOf)
		})
		r.Get("/enumerate/{n}", s.handleEnumerate)
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// observe logs each request and reports it to the server hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)
		observability.Server().OnRequest(r.Context(), r.Method, route)
		observability.Server().OnResponse(r.Context(), r.Method, route, ww.Status(), elapsed)
		s.Logger.Debug("request",
			"method", r.Method,
			"route", route,
			"status", ww.Status(),
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()))
	})
}
