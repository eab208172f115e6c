package http

import (
	"github.com/gin-gonic/gin"

	"todo-list/internal/todo"
	"todo-list/internal/todo/render"
	"todo-list/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	// Page intents
	Index(c *gin.Context)
	Submit(c *gin.Context)
	Edit(c *gin.Context)
	Save(c *gin.Context)
	Cancel(c *gin.Context)
	Remove(c *gin.Context)

	// JSON API
	List(c *gin.Context)
	Create(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       todo.UseCase
	renderer *render.Renderer
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc todo.UseCase, renderer *render.Renderer) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		renderer: renderer,
	}
}
