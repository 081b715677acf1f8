package routers

import (
	"github.com/go-chi/chi/v5"

	"prepmate/interview/internal/handlers"
	"prepmate/interview/internal/middleware"
)

func AnalyticsRoutes(router *chi.Mux, jwtSecret string, analyticsHandler *handlers.AnalyticsHandler) {
	router.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))
		r.Get("/summary", analyticsHandler.SummaryHandler)
		r.Get("/topics", analyticsHandler.TopicsHandler)
		r.Get("/difficulty", analyticsHandler.DifficultiesHandler)
		r.Get("/progress", analyticsHandler.ProgressHandler)
		r.Get("/full", analyticsHandler.FullHandler)
	})
}
