package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jask/cardcheck/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the card form over HTTP. It keeps no card state between
// requests: every request carries the whole form.
type Server struct {
	cfg     config.WebConfig
	logger  *slog.Logger
	page    *template.Template
	version string
	newID   func() string
}

// Option configures a Server.
type Option func(*Server)

// WithIDFunc replaces the protocol id generator used by confirmations.
func WithIDFunc(fn func() string) Option {
	return func(s *Server) { s.newID = fn }
}

// WithVersion sets the version reported by /health.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// New returns a Server for cfg.
func New(cfg config.WebConfig, logger *slog.Logger, opts ...Option) (*Server, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		page:    page,
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler returns the router with all routes and middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(recoverer(s.logger))
	r.Use(noStore)

	r.Get("/health", s.health)

	r.Group(func(r chi.Router) {
		r.Use(s.limitBody)
		r.Get("/", s.showPage)
		r.Post("/", s.submitPage)

		r.Route("/api", func(r chi.Router) {
			r.Post("/edit", s.edit)
			r.Post("/check", s.check)
		})
	})
	return r
}

func (s *Server) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

// Run listens on cfg.Addr until ctx is cancelled, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("web server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("web server stopped")
	return nil
}
