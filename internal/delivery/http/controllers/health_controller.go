package controllers

import (
	"net/http"
	"time"

	"communityhub/internal/delivery/http/helpers"
)

// Version reported by the health endpoint.
const Version = "2.0.0"

// HealthResponse is the body of GET /health.
// swagger:model HealthResponse
type HealthResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Endpoints string `json:"endpoints"`
}

// HealthController serves the liveness endpoint.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health godoc
// @Summary Health check
// @Description Reports gateway liveness. Does not touch the database or the email provider.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{
		Success:   true,
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
		Endpoints: "all",
	})
}
