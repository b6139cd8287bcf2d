package http

import (
	"github.com/gin-gonic/gin"

	"course-outline-planner/internal/middleware"
)

// RegisterRoutes maps the chat routes onto rg (mounted at /api/chat).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/calendar", mw.RateLimit(), h.Calendar)
}
