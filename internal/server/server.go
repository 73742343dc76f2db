// Package server is the HTTP surface of the execution service.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/michaelbrown/runbox/internal/engine"
)

const (
	serviceName = "execution-service"
	version     = "0.1.0"
)

// Executor is the slice of the engine the HTTP layer needs.
type Executor interface {
	Execute(ctx context.Context, req engine.Request) engine.Response
	Languages() []string
}

// Server serves the execution API.
type Server struct {
	exec   Executor
	router chi.Router
	http   *http.Server
	log    *slog.Logger
}

// New creates a Server around an executor.
func New(exec Executor, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		exec:   exec,
		router: chi.NewRouter(),
		log:    logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         3600,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/languages", s.handleLanguages)
	r.Post("/execute", s.handleExecute)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start begins listening on 0.0.0.0 at the given port.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf("0.0.0.0:%d", port)
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	s.log.Info("execution service listening", "addr", addr)
	return s.http.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return s.http.Shutdown(shutdownCtx)
}
