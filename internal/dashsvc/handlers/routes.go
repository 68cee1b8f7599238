package handlers

import (
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Get("/", h.DashboardHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)
	})
}
