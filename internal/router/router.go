// Package router sets up all HTTP routes and middleware chains for the
// techblog server. It organizes routes into the JSON API, the demo
// mirror, and the public reading pages.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"techblog/internal/handlers"
	"techblog/internal/middleware"
)

// commentLimit caps comment submissions per client IP. Everything else
// on the API is read-heavy and left unthrottled.
const (
	commentLimit  = 5
	commentWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)

	// Health check.
	r.Get("/health", handlers.Health)

	// JSON API. Unknown paths and unsupported methods stay inside the
	// response envelope.
	r.Route("/api", func(r chi.Router) {
		r.NotFound(handlers.NotFound)
		r.MethodNotAllowed(handlers.MethodNotAllowed)

		r.Get("/posts", api.PostsGet)
		r.Post("/posts", api.PostCreate)
		r.Put("/posts", api.PostUpdate)
		r.Delete("/posts", api.PostDelete)

		r.Get("/comments", api.CommentsGet)
		r.With(middleware.NewRateLimiter(commentLimit, commentWindow).Middleware).
			Post("/comments", api.CommentCreate)
		r.Put("/comments", api.CommentUpdate)
		r.Delete("/comments", api.CommentDelete)

		r.Get("/categories", api.CategoriesGet)

		r.Get("/settings", api.SettingsGet)
		r.Put("/settings", api.SettingsUpdate)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/", api.AnalyticsSummary)
			r.Get("/summary", api.AnalyticsSummary)
			r.Get("/content", api.AnalyticsContent)
			r.Get("/engagement", api.AnalyticsEngagement)
			r.Get("/seo", api.AnalyticsSEO)
		})

		r.Post("/media", api.MediaUpload)

		// Throwaway in-memory mirror for trying the API.
		r.Route("/demo", func(r chi.Router) {
			r.Get("/posts", api.DemoPostsGet)
			r.Post("/posts", api.DemoPostCreate)
			r.Put("/posts", api.DemoPostUpdate)
			r.Delete("/posts", api.DemoPostDelete)
			r.Get("/categories", api.DemoCategoriesGet)
			r.Post("/reset", api.DemoReset)
		})
	})

	// Public reading pages.
	r.Get("/", public.Home)
	r.Get("/posts/{slug}", public.Post)

	return r
}
