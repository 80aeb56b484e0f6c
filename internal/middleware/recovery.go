package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"task-tracker/pkg/response"
)

// Recovery turns a panicking handler into a 500 response.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				m.l.Errorf(c.Request.Context(), "panic recovered: %v\n%s", rec, debug.Stack())
				response.InternalError(c, fmt.Errorf("panic: %v", rec))
			}
		}()
		c.Next()
	}
}
