package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"go-storefront/internal/platform/logger"
)

// RequestLogger writes one structured line per request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
			"session_id", SessionIDFrom(c),
			"culture", CultureFrom(c),
		}
		if len(c.Errors) > 0 {
			log.With(fields...).Errorf("HTTP request failed: %s", c.Errors.String())
			return
		}
		log.With(fields...).Info("HTTP request")
	}
}
