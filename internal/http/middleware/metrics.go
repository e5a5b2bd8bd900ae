package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aislechef-backend/internal/observability"
)

// Metrics records API request counts, latency and in-flight requests.
// Prometheus scrapes of /metrics are not counted. Unmatched paths are
// folded into a single "unmatched" route label to bound cardinality.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		m.ApiInflightInc()
		defer m.ApiInflightDec()
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveAPI(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
