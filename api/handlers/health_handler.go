package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-storefront/internal/session"
)

type HealthHandler struct {
	store session.CartStore
}

func NewHealthHandler(store session.CartStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// GET /api/health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"timestamp": time.Now().Unix(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}
