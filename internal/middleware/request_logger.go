package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talentbridge/talentbridge-backend/internal/logger"
)

// RequestLogger logs one structured line per request. Paths under /sse are
// skipped because streams hold the connection open for minutes.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	reqLog := log.With("component", "http")
	return func(c *gin.Context) {
		if c.FullPath() == "/api/sse/stream" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		if c.Writer.Status() >= 500 {
			reqLog.Error("Request failed", fields...)
			return
		}
		reqLog.Info("Request served", fields...)
	}
}
