package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	service string
	db      HealthChecker
}

func NewHealthHandler(service string, db HealthChecker) *HealthHandler {
	return &HealthHandler{service: service, db: db}
}

// Health reports liveness plus database reachability. A down database
// turns the response into a 503.
func (h *HealthHandler) Health(c *gin.Context) {
	body := gin.H{"status": "healthy", "service": h.service}
	if h.db == nil {
		c.JSON(http.StatusOK, body)
		return
	}

	stats := h.db.Health(c.Request.Context())
	body["database"] = stats
	if stats["status"] != "up" {
		body["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}
