package http

import (
	"github.com/gin-gonic/gin"

	"course-outline-planner/internal/middleware"
)

// RegisterRoutes maps the course routes onto rg (mounted at /api).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/upload-syllabus", mw.RateLimit(), h.Upload)
	rg.GET("/events", h.AllEvents)

	courses := rg.Group("/courses")
	{
		courses.GET("", h.List)
		courses.GET("/:id", h.Detail)
		courses.GET("/:id/events", h.Events)
		courses.GET("/:id/calendar.ics", h.ExportICS)
		courses.POST("/:id/sync-google", h.Sync)
	}
}
