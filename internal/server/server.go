// Package server binds the studio services to the three-tab web UI and its
// JSON endpoints.
package server

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/amansinghal116/polyglotlab/internal/language"
	"github.com/amansinghal116/polyglotlab/internal/studio"
)

type Server struct {
	addr     string
	registry *language.Registry
	svc      *studio.Service
	logger   *log.Logger
	index    *template.Template
	srv      *http.Server
}

func New(addr string, registry *language.Registry, svc *studio.Service, logger *log.Logger) *Server {
	s := &Server{
		addr:     addr,
		registry: registry,
		svc:      svc,
		logger:   logger,
		index:    template.Must(template.ParseFS(uiFS, "index.html")),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/languages", s.handleLanguages)
	mux.HandleFunc("/api/translate", s.handleTranslate)
	mux.HandleFunc("/api/backtranslate", s.handleBackTranslate)
	mux.HandleFunc("/api/feedback", s.handleFeedback)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.requestLog(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("studio listening on %s", s.addr)
		if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Printf("graceful shutdown failed: %v", err)
		return s.srv.Close()
	}
	return nil
}

// requestLog assigns each request a UUID and logs method, path, status, and
// duration. One bad request must never take the process down, so handler
// panics are contained here.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Printf("%s panic: %v", requestID, rec)
				http.Error(lrw, "internal error", http.StatusInternalServerError)
			}
			s.logger.Printf("%s %s %s %d %s", requestID, r.Method, r.URL.Path, lrw.statusCode, time.Since(start))
		}()

		next.ServeHTTP(lrw, r)
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(statusCode int) {
	lrw.statusCode = statusCode
	lrw.ResponseWriter.WriteHeader(statusCode)
}
