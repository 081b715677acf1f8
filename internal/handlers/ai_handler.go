package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prepmate/interview/internal/interview"
	"prepmate/interview/internal/middleware"
	"prepmate/interview/internal/models"
	"prepmate/interview/internal/utils"
)

// AIHandler exposes ad-hoc question generation outside the session turn
// flow. Unlike session creation, this endpoint surfaces AI unavailability
// to the caller.
type AIHandler struct {
	service *interview.Service
	logger  *zap.Logger
}

func NewAIHandler(service *interview.Service, logger *zap.Logger) *AIHandler {
	return &AIHandler{service: service, logger: logger}
}

func (h *AIHandler) GenerateQuestionHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateQuestionRequest](r)
	requestID := generateRequestID()

	question, err := h.service.GenerateAdHoc(r.Context(), req.Topic, req.Difficulty, req.SessionID)
	if err != nil {
		h.logger.Warn("ad-hoc generation failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		writeServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("ad-hoc question generated",
		zap.String("request_id", requestID),
		zap.Uint("question_id", question.ID),
		zap.String("topic", question.Topic))

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"request_id": requestID,
		"question":   question,
	})
}

func generateRequestID() string {
	return uuid.New().String()
}
