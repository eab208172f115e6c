package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logging writes one access log line per request.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.l.Debugf(c.Request.Context(), "request started: %s %s", c.Request.Method, c.Request.URL.Path)

		c.Next()

		m.l.Infof(c.Request.Context(), "request completed: method=%s path=%s status=%d duration_ms=%d remote_ip=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Milliseconds(),
			c.ClientIP(),
		)
	}
}
