package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/phrazzld/passeio-api/internal/api"
	apiMiddleware "github.com/phrazzld/passeio-api/internal/api/middleware"
	"github.com/phrazzld/passeio-api/internal/service"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(middleware.Recoverer)

	guideHandler := api.NewCrudHandler[service.GuideDTO, uuid.UUID](
		"guide",
		app.guideService,
		api.UUIDCodec(func(d service.GuideDTO, id uuid.UUID) service.GuideDTO {
			d.ID = id
			return d
		}),
		app.logger,
	)
	tourHandler := api.NewCrudHandler[service.TourDTO, uuid.UUID](
		"tour",
		app.tourService,
		api.UUIDCodec(func(d service.TourDTO, id uuid.UUID) service.TourDTO {
			d.ID = id
			return d
		}),
		app.logger,
	)

	r.Route("/api", func(r chi.Router) {
		r.Route("/guides", guideHandler.Routes)
		r.Route("/tours", tourHandler.Routes)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
