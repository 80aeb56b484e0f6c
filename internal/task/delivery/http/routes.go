package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods under /task.
// Task routes are rate limited per client.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	tasks := r.Group("/task", mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.PUT("/:id/status", h.UpdateStatus)
		tasks.DELETE("/:id", h.Delete)
	}
}
