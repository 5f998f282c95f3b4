// Package web serves the dashboard as server-rendered HTML over one controller.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/logging"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

// Config holds server-specific configuration.
type Config struct {
	Addr     string
	Location *time.Location
}

type Server struct {
	cfg    Config
	router chi.Router
	ctrl   *controller.Controller
	coord  *controller.Coordinator
	store  ports.ContextStore
	logger ports.Logger
	now    func() time.Time
}

// NewServer wires the dashboard routes. store may be nil, in which case the
// active context is not persisted.
func NewServer(cfg Config, ctrl *controller.Controller, coord *controller.Coordinator, store ports.ContextStore, logger ports.Logger) *Server {
	if logger == nil {
		logger = logging.Nop()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		ctrl:   ctrl,
		coord:  coord,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(htmx)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.handleDashboard)
	r.Get("/api/snapshot", s.handleSnapshot)

	r.Post("/load", s.handleLoad)
	r.Post("/range", s.handleRange)
	r.Post("/demo", s.handleDemo)
	r.Post("/sessions/start", s.handleStartSession)
	r.Post("/sessions/{id}/select", s.handleSelect)
	r.Post("/sessions/{id}/end", s.handleEndSession)
	r.Post("/interruptions", s.handleCreateInterruption)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Debug("starting dashboard server", "addr", s.cfg.Addr)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
