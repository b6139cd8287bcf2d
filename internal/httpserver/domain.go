package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "course-outline-planner/internal/agent/delivery/http"
	authHTTP "course-outline-planner/internal/auth/delivery/http"
	courseHTTP "course-outline-planner/internal/course/delivery/http"
	"course-outline-planner/internal/middleware"
	"course-outline-planner/internal/model"
)

// setupCourseDomain registers /api/upload-syllabus, /api/courses/... and /api/events.
func (srv HTTPServer) setupCourseDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := courseHTTP.New(srv.l, srv.courseUC, srv.maxUploadBytes)
	courseHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Course domain registered")
}

// setupAuthDomain registers /api/auth/...
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	secure := srv.environment == string(model.EnvironmentProduction)
	h := authHTTP.New(srv.l, srv.authUC, secure)
	authHTTP.RegisterRoutes(api.Group("/auth"), h, mw)
	srv.l.Infof(ctx, "Auth domain registered")
}

// setupChatDomain registers /api/chat/...
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, mw)
	srv.l.Infof(ctx, "Chat domain registered")
}
