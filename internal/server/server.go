// Package server implements the treegraft HTTP API.
//
// The API exposes the tree engine over JSON: parsing Newick text into
// tree documents, computing statistics, rendering, and an optional
// archive of named trees backed by MongoDB. Expensive results are
// cached through the pkg/cache backends.
//
// # Endpoints
//
//	GET  /healthz              liveness probe
//	POST /api/parse            Newick text -> tree document
//	POST /api/stats            tree document -> statistics
//	POST /api/render?format=   tree document -> dot or svg
//	POST /api/trees            save a named tree (archive)
//	GET  /api/trees            list saved trees
//	GET  /api/trees/{id}       fetch a saved tree
//	DELETE /api/trees/{id}     delete a saved tree
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/treegraft/treegraft/pkg/archive"
	"github.com/treegraft/treegraft/pkg/cache"
)

// Options configures the server.
type Options struct {
	// Logger receives request and error logs. Defaults to log.Default().
	Logger *log.Logger

	// Cache stores parse and render results. Defaults to NullCache.
	Cache cache.Cache

	// Keyer generates cache keys. Defaults to DefaultKeyer.
	Keyer cache.Keyer

	// Store is the tree archive. When nil the /api/trees endpoints
	// respond with 503.
	Store archive.Store
}

// Server is the treegraft HTTP API server.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	keyer  cache.Keyer
	store  archive.Store
	router *chi.Mux
}

// New creates a server with the given options.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}

	s := &Server{
		logger: opts.Logger,
		cache:  opts.Cache,
		keyer:  opts.Keyer,
		store:  opts.Store,
	}
	s.router = s.routes()
	return s
}

// Handler returns the server's HTTP handler for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully with a 10 second drain window.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Post("/stats", s.handleStats)
		r.Post("/render", s.handleRender)

		r.Route("/trees", func(r chi.Router) {
			r.Use(s.requireStore)
			r.Post("/", s.handleTreeSave)
			r.Get("/", s.handleTreeList)
			r.Get("/{id}", s.handleTreeGet)
			r.Delete("/{id}", s.handleTreeDelete)
		})
	})

	return r
}

// logRequests logs each request with method, path, status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// requireStore rejects archive requests when no store is configured.
func (s *Server) requireStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.store == nil {
			writeErrorStatus(w, http.StatusServiceUnavailable, "UNSUPPORTED", "tree archive is not configured")
			return
		}
		next.ServeHTTP(w, r)
	})
}
