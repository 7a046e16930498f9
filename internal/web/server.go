// Package web provides the HTTP server exposing the review API.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/rmaia/critic/internal/ai"
	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/web/api"
)

// Server is the HTTP server for the Critic review API.
type Server struct {
	router   chi.Router
	addr     string
	handlers *api.Handlers
}

// NewServer builds a new Server with middleware and routes configured.
func NewServer(addr string, a *analyzer.Analyzer, reviewer *ai.Reviewer, aiTimeout time.Duration, logger zerolog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		addr:   addr,
		handlers: &api.Handlers{
			Analyzer:  a,
			Reviewer:  reviewer,
			AITimeout: aiTimeout,
			Logger:    logger,
		},
	}

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.registerRoutes()

	return s
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	return http.ListenAndServe(s.addr, s.router)
}

// Router exposes the chi.Router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}
