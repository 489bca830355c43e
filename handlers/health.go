package handlers

import (
	"net/http"

	"deltaclinic/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and dependency health.
type HealthHandler struct {
	Status func() utils.HealthStatus
}

func NewHealthHandler(status func() utils.HealthStatus) *HealthHandler {
	return &HealthHandler{Status: status}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "delta-clinic server is running")
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Status()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
