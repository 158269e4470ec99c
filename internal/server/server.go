// Package server exposes the generation pipeline over HTTP.
//
// The API mirrors the CLI: one endpoint per command. Requests are stateless;
// every generate call is an independent pass against the shared word bank.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/serenakung/speech-scene-generator/pkg/assets"
	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/pipeline"
	"github.com/serenakung/speech-scene-generator/pkg/usagelog"
)

// Server serves the generation API.
type Server struct {
	runner *pipeline.Runner
	loader *assets.Loader
	bank   *lexicon.Bank
	usage  usagelog.Store
	logger *log.Logger
}

// New creates a Server. The usage store may be nil, in which case the log
// endpoints report an empty log.
func New(runner *pipeline.Runner, loader *assets.Loader, bank *lexicon.Bank, usage usagelog.Store, logger *log.Logger) *Server {
	return &Server{
		runner: runner,
		loader: loader,
		bank:   bank,
		usage:  usage,
		logger: logger,
	}
}

// Handler builds the routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Get("/audit", s.handleAudit)
		r.Get("/log.csv", s.handleLogCSV)
	})
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// requestLogger logs one line per request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
