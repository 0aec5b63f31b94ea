package router

import (
	"net/http"

	"kirana/internal/handler"
	"kirana/internal/middleware"
	"kirana/internal/static"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	showcaseHandler *handler.ShowcaseHandler,
	staticHandler *handler.StaticHandler,
	corsAllowedOrigin string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(corsAllowedOrigin))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", categoryHandler.List)
		r.Get("/categories/{slug}", categoryHandler.GetBySlug)
		r.Get("/products", productHandler.List)
		r.Get("/products/{slug}", productHandler.GetBySlug)
		r.Get("/prices", showcaseHandler.Prices)
		r.Get("/journey", showcaseHandler.Journey)
		r.Get("/locations", showcaseHandler.Locations)
	})

	for name := range static.Files {
		r.Get("/"+name, staticHandler.Serve(name))
	}

	return r
}
