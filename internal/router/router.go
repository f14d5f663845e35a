package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feedline-dev/feedline/internal/handler"
	"github.com/feedline-dev/feedline/internal/middleware/metrics"
	"github.com/feedline-dev/feedline/internal/setup"
)

func SetupRouter(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/favicon.ico", handler.FaviconHandler)
	r.Get("/health", handler.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	h := deps.Handler
	r.Get("/", h.FeedGetHandler)
	r.Post("/posts", h.PostCreateHandler)
	r.Post("/posts/{key}/like", h.PostLikeHandler)
	r.Post("/posts/{id}/delete", h.PostDeleteHandler)
	r.Post("/posts/{id}/comments/toggle", h.CommentToggleHandler)
	r.Post("/posts/{id}/comments/close", h.CommentCloseHandler)
	r.Post("/posts/{id}/comments", h.CommentCreateHandler)
	r.Post("/comments/{id}/delete", h.CommentDeleteHandler)

	return r
}
