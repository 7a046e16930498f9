package web

import (
	"github.com/go-chi/chi/v5"
)

// registerRoutes mounts all route groups on the server's router.
func (s *Server) registerRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/review", s.handlers.Review)
		r.Get("/health", s.handlers.Health)
	})
}
