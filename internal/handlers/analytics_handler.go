package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"prepmate/interview/internal/analytics"
	"prepmate/interview/internal/middleware"
	"prepmate/interview/internal/utils"
)

type AnalyticsHandler struct {
	aggregator *analytics.Aggregator
	logger     *zap.Logger
}

func NewAnalyticsHandler(aggregator *analytics.Aggregator, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{aggregator: aggregator, logger: logger}
}

func (h *AnalyticsHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := h.aggregator.Summary(middleware.GetUserID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}

func (h *AnalyticsHandler) TopicsHandler(w http.ResponseWriter, r *http.Request) {
	topics, err := h.aggregator.Topics(middleware.GetUserID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"topics": topics})
}

func (h *AnalyticsHandler) DifficultiesHandler(w http.ResponseWriter, r *http.Request) {
	difficulties, err := h.aggregator.Difficulties(middleware.GetUserID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"difficulties": difficulties})
}

func (h *AnalyticsHandler) ProgressHandler(w http.ResponseWriter, r *http.Request) {
	progress, err := h.aggregator.Progress(middleware.GetUserID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"progress": progress})
}

func (h *AnalyticsHandler) FullHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.aggregator.Full(middleware.GetUserID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	utils.JSON(w, http.StatusOK, report)
}
