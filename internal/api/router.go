package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/karankatare99/uber/internal/api/handlers"
	"github.com/karankatare99/uber/internal/api/middleware"
	"github.com/karankatare99/uber/internal/config"
	"github.com/karankatare99/uber/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg)
	profileHandler := handlers.NewProfileHandler(services.Auth, cfg)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.Session)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/profile", profileHandler.Update)
	})

	// Page routes. Rendering lives in the frontend; the server only
	// enforces that the dashboard subtree requires a live session.
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(middleware.SessionGate(services.Codec, cfg.IsProduction()))
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})
	})

	return r
}
