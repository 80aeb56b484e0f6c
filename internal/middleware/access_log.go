package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request once the handler chain has finished.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s status=%d latency=%s ip=%s errors=%q", c.Request.Method, path, status, latency, c.ClientIP(), c.Errors.String())
		case status >= 400:
			m.l.Warnf(ctx, "%s %s status=%d latency=%s ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		default:
			m.l.Infof(ctx, "%s %s status=%d latency=%s ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		}
	}
}
