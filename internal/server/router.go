package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wikimentor/wiki-mentor/internal/config"
	"github.com/wikimentor/wiki-mentor/internal/core"
	"github.com/wikimentor/wiki-mentor/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware
// and API routes.
func NewRouter(cfg *config.Config, reviewer core.Reviewer, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Configure middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Cross-origin access for the local development frontends.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	reviewHandler := handler.NewReviewHandler(reviewer, logger)

	r.Get("/", reviewHandler.Root)
	r.Route("/api", func(r chi.Router) {
		r.Post("/review", reviewHandler.Review)
		r.Get("/health", reviewHandler.Health)
	})

	return r
}
