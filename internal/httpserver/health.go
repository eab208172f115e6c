package httpserver

import (
	"github.com/gin-gonic/gin"

	"todo-list/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "To-do list is up"
	HealthVersion = "1.0.0"
	ServiceName   = "todo-list"
)

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck reports ready once the task collection has been loaded, along
// with how many tasks it holds.
// @Summary Readiness Check
// @Description Check if the task store is loaded and serving
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	n := 0
	for range srv.todoUC.List(c.Request.Context()) {
		n++
	}

	body := healthBody("ready")
	body["tasks"] = n
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
