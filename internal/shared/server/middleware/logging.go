package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"guide-backend/internal/shared/metrics"
	"guide-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request and records request metrics.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()

		metrics.ObserveRequest(route, status, latency)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		for _, key := range []string{"mbti", "mode"} {
			if v := c.GetString(key); v != "" {
				fields[key] = v
			}
		}
		telemetry.Info("request.complete", fields)
	}
}
