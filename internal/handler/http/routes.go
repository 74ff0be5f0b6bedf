package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/config", h.getConfig)
	router.Get("/api/application", h.getApplication)
	router.Get("/api/version/", h.getVersion)

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
