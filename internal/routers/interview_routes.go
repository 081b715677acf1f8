package routers

import (
	"github.com/go-chi/chi/v5"

	"prepmate/interview/internal/handlers"
	"prepmate/interview/internal/middleware"
	"prepmate/interview/internal/models"
)

// InterviewRoutes registers the session lifecycle surface: sessions,
// answers, questions, and ad-hoc AI generation.
func InterviewRoutes(
	router *chi.Mux,
	jwtSecret string,
	sessionHandler *handlers.SessionHandler,
	answerHandler *handlers.AnswerHandler,
	questionHandler *handlers.QuestionHandler,
	aiHandler *handlers.AIHandler,
) {
	router.Route("/api/v1/sessions", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))
		r.With(middleware.ValidateRequest[*models.CreateSessionRequest]()).Post("/", sessionHandler.CreateHandler)
		r.Get("/", sessionHandler.ListHandler)
		r.Get("/{id}", sessionHandler.DetailHandler)
	})

	router.Route("/api/v1/answers", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))
		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/", answerHandler.SubmitHandler)
		r.Get("/me", answerHandler.ListMineHandler)
	})

	router.Route("/api/v1/questions", func(r chi.Router) {
		r.Get("/{id}", questionHandler.GetHandler)
		r.With(middleware.RequireAuth(jwtSecret)).Get("/session/{id}", questionHandler.ListBySessionHandler)
	})

	router.Route("/api/v1/ai", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))
		r.With(middleware.ValidateRequest[*models.GenerateQuestionRequest]()).Post("/questions", aiHandler.GenerateQuestionHandler)
	})
}
