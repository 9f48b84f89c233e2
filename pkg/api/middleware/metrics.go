package middleware

import (
	"time"

	"scan-viewer-go/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency by route template
func Metrics(m *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
