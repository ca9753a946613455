package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkarlsen/locations-api/internal/api"
	apiMiddleware "github.com/mkarlsen/locations-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	locationHandler := api.NewLocationHandler(
		app.locationStore,
		app.countryStore,
		app.authorizer,
		app.config.Auth.SuperRole,
		app.logger,
	)
	countryHandler := api.NewCountryHandler(app.countryStore, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/locations", func(r chi.Router) {
			r.Get("/", locationHandler.List)
			r.Post("/", locationHandler.Create)
			r.Get("/{id}", locationHandler.Get)
			r.Patch("/{id}", locationHandler.Patch)
			r.Delete("/{id}", locationHandler.Delete)
		})

		r.Route("/countries", func(r chi.Router) {
			r.Get("/", countryHandler.List)
			r.Get("/{iso3}", countryHandler.Get)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
