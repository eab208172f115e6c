package http

import (
	"github.com/gin-gonic/gin"

	"todo-list/internal/middleware"
)

// RegisterRoutes maps the page intents onto root and the JSON API onto api.
// Mutating routes go through the rate limiter.
func RegisterRoutes(root *gin.RouterGroup, api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	root.GET("/", h.Index)
	page := root.Group("/tasks", mw.RateLimit())
	{
		page.POST("", h.Submit)
		page.POST("/:id/edit", h.Edit)
		page.POST("/:id/save", h.Save)
		page.POST("/:id/cancel", h.Cancel)
		page.POST("/:id/delete", h.Remove)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.PUT("/:id", mw.RateLimit(), h.Update)
		tasks.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
