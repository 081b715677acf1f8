package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"prepmate/interview/internal/ai"
	"prepmate/interview/internal/interview"
	"prepmate/interview/internal/middleware"
	"prepmate/interview/internal/models"
	"prepmate/interview/internal/repositories"
	"prepmate/interview/internal/utils"
)

type SessionHandler struct {
	service *interview.Service
	logger  *zap.Logger
}

func NewSessionHandler(service *interview.Service, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{service: service, logger: logger}
}

func (h *SessionHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateSessionRequest](r)
	userID := middleware.GetUserID(r)

	session, err := h.service.CreateSession(r.Context(), userID, req.Topic, req.Difficulty)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("session created",
		zap.Uint("session_id", session.ID),
		zap.Uint("user_id", userID),
		zap.String("topic", session.Topic),
		zap.Int("questions", len(session.Questions)))

	utils.JSON(w, http.StatusOK, map[string]interface{}{"session": session})
}

func (h *SessionHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	sessions, err := h.service.ListSessions(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

func (h *SessionHandler) DetailHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	sessionID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.service.SessionDetail(r.Context(), userID, sessionID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	utils.JSON(w, http.StatusOK, detail)
}

func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_id",
			Message: "URL parameter " + name + " must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps service failures onto the response taxonomy.
// Persistence failures are the only 500s; AI degradation never reaches
// here by design.
func writeServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	switch {
	case errors.Is(err, repositories.ErrSessionNotFound),
		errors.Is(err, repositories.ErrQuestionNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, interview.ErrForbidden):
		utils.JSON(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "forbidden",
			Message: "You do not have access to this session",
		})
	case errors.Is(err, ai.ErrUnconfigured):
		utils.JSON(w, http.StatusServiceUnavailable, models.ErrorResponse{
			Code:    "ai_unavailable",
			Message: "AI generation is not configured",
		})
	default:
		logger.Error("request failed", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Something went wrong",
		})
	}
}
