// Package server implements the depline HTTP API, the thin shell around
// the core pipeline. It accepts a raw dependency document - pasted text
// as JSON or an uploaded file - and returns the normalized input together
// with the expanded output, or the pipeline's error message. No state
// survives a request.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mlutz/depline/pkg/config"
	"github.com/mlutz/depline/pkg/pipeline"
)

// Server serves the depline HTTP API.
type Server struct {
	cfg    config.Config
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server with its routes registered.
func New(cfg config.Config, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:    cfg,
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/expand", s.handleExpand)
		r.Post("/expand/upload", s.handleUpload)
	})
	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)

	s.router = r
	return s
}

// Handler returns the root HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout.Duration,
		WriteTimeout: s.cfg.Server.WriteTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownTimeout := s.cfg.Server.ShutdownTimeout.Duration
	if shutdownTimeout <= 0 {
		shutdownTimeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
