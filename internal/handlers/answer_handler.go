package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"prepmate/interview/internal/interview"
	"prepmate/interview/internal/middleware"
	"prepmate/interview/internal/models"
	"prepmate/interview/internal/repositories"
	"prepmate/interview/internal/utils"
)

type AnswerHandler struct {
	service *interview.Service
	answers *repositories.AnswerRepository
	logger  *zap.Logger
}

func NewAnswerHandler(service *interview.Service, answers *repositories.AnswerRepository, logger *zap.Logger) *AnswerHandler {
	return &AnswerHandler{service: service, answers: answers, logger: logger}
}

// SubmitHandler runs one interview turn. The submission always succeeds in
// recording the user's text, even when grading is unavailable.
func (h *AnswerHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)
	userID := middleware.GetUserID(r)

	result, err := h.service.SubmitAnswer(r.Context(), userID, req.SessionID, req.QuestionID, req.Response)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("answer submitted",
		zap.Uint("session_id", req.SessionID),
		zap.Uint("question_id", req.QuestionID),
		zap.Bool("graded", result.Answer.Score != nil),
		zap.String("session_status", result.SessionStatus))

	utils.JSON(w, http.StatusOK, models.SubmitAnswerResponse{
		Answer:        *result.Answer,
		NextQuestion:  result.NextQuestion,
		SessionStatus: result.SessionStatus,
	})
}

func (h *AnswerHandler) ListMineHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	answers, err := h.answers.ListByUser(userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"answers": answers})
}
