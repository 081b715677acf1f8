package handlers

import (
	"net/http"

	"prepmate/interview/internal/ai"
	"prepmate/interview/internal/utils"
)

type HealthHandler struct {
	client *ai.Client
}

func NewHealthHandler(client *ai.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

func (h *HealthHandler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"service":       "interview",
		"ai_configured": h.client.Configured(),
		"ai_provider":   h.client.ProviderName(),
	})
}
