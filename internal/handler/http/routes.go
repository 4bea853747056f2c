package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)

	router.Post("/helloworld", h.helloWorld)

	// service routes
	router.Get("/version", h.getAppVersion)
	router.Get("/healthz", h.healthz)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
