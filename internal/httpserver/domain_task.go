package httpserver

import (
	"context"

	"task-tracker/internal/middleware"
	taskHTTP "task-tracker/internal/task/delivery/http"
)

// setupTaskDomain registers the task routes on top of the configured use case.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC)

	// Routes: registers /task
	taskHTTP.RegisterRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
