package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"course-outline-planner/internal/middleware"
	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/metrics"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.mwConfig, srv.metrics)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID(), mw.Observe(), mw.CORS(), mw.Session())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.mwConfig.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins=%v", srv.environment, srv.mwConfig.AllowedOrigins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if srv.gatherer != nil {
		srv.gin.GET("/metrics", gin.WrapH(metrics.Handler(srv.gatherer)))
	}
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	if srv.courseUC != nil {
		srv.setupCourseDomain(ctx, api, mw)
	} else {
		srv.l.Infof(ctx, "Course use case not configured, skipping course routes")
	}

	if srv.authUC != nil {
		srv.setupAuthDomain(ctx, api, mw)
	} else {
		srv.l.Infof(ctx, "Auth use case not configured, skipping auth routes")
	}

	if srv.chatUC != nil {
		srv.setupChatDomain(ctx, api, mw)
	} else {
		srv.l.Infof(ctx, "Chat use case not configured, skipping chat routes")
	}

	return nil
}
