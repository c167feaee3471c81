package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports storage connectivity.
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Check handles GET /api/health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.pinger.HealthCheck(c.Request.Context()); err != nil {
		respondMessage(c, http.StatusServiceUnavailable, "unhealthy")
		return
	}
	respondMessage(c, http.StatusOK, "ok")
}
