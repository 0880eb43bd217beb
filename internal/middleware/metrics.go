package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/studyhub-api/internal/metrics"
)

// RequestCounter counts every handled request once the handler chain is done.
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
