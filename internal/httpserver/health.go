package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"course-outline-planner/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Course outline planner API"
	HealthVersion = "1.0.0"
	ServiceName   = "course-outline-planner"
)

func (srv HTTPServer) statusBody(status string) gin.H {
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
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("healthy"))
}

// readyCheck reports ready once the course, auth and chat domains are wired.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "A domain is not configured"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.statusBody("ready")
	body["domains"] = gin.H{
		"course": srv.courseUC != nil,
		"auth":   srv.authUC != nil,
		"chat":   srv.chatUC != nil,
	}

	if srv.courseUC == nil || srv.authUC == nil || srv.chatUC == nil {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "not ready",
			Data:      body,
		})
		return
	}

	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("alive"))
}
