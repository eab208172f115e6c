package httpserver

import (
	"context"

	"todo-list/internal/middleware"
	todoHTTP "todo-list/internal/todo/delivery/http"
	"todo-list/internal/todo/render"
)

// setupTodoDomain mounts the task list page and its JSON API.
// The usecase is built and initialized by the caller, so the slot is read
// exactly once at startup.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, mw middleware.Middleware) error {
	// 1. Renderer
	renderer := render.New(srv.todoUC, srv.l)

	// 2. HTTP Handler
	h := todoHTTP.New(srv.l, srv.todoUC, renderer)

	// 3. Routes: page on /, API on /api/v1/tasks
	todoHTTP.RegisterRoutes(&srv.gin.RouterGroup, srv.gin.Group("/api/v1"), h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
