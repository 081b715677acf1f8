package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"prepmate/interview/internal/repositories"
	"prepmate/interview/internal/utils"
)

type QuestionHandler struct {
	questions *repositories.QuestionRepository
	logger    *zap.Logger
}

func NewQuestionHandler(questions *repositories.QuestionRepository, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{questions: questions, logger: logger}
}

func (h *QuestionHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	question, err := h.questions.GetByID(questionID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"question": question})
}

func (h *QuestionHandler) ListBySessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	questions, err := h.questions.ListBySession(sessionID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}
