package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/coachie-backend/internal/logger"
)

// RequestLogger logs one line per request with method, path, status and
// duration. The Twilio webhook is noisy, so it logs at debug.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	reqLog := log.With("middleware", "RequestLogger")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		if c.FullPath() == "/api/sms/webhook" {
			reqLog.Debug("Request handled", fields...)
			return
		}
		if c.Writer.Status() >= 500 {
			reqLog.Error("Request failed", fields...)
			return
		}
		reqLog.Info("Request handled", fields...)
	}
}
