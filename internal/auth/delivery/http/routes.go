package http

import (
	"github.com/gin-gonic/gin"

	"course-outline-planner/internal/middleware"
)

// RegisterRoutes maps the auth routes onto rg (mounted at /api/auth).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	google := rg.Group("/google")
	{
		google.GET("/url", h.URL)
		google.GET("/callback", h.Callback)
	}
	rg.GET("/status", h.Status)
	rg.POST("/logout", h.Logout)
}
