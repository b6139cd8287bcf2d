package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"course-outline-planner/internal/agent"
	"course-outline-planner/internal/auth"
	"course-outline-planner/internal/course"
	"course-outline-planner/internal/middleware"
	"course-outline-planner/pkg/log"
	"course-outline-planner/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	mwConfig middleware.Config
	metrics  metrics.Recorder
	gatherer prometheus.Gatherer

	// Domains
	courseUC       course.UseCase
	authUC         auth.UseCase
	chatUC         agent.UseCase
	maxUploadBytes int64
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Middleware
	AllowedOrigins []string
	RequestsPerMin int
	Metrics        metrics.Recorder
	// Gatherer backs GET /metrics. Nil disables the route.
	Gatherer prometheus.Gatherer

	// Domains. A nil use case skips its routes.
	CourseUseCase  course.UseCase
	AuthUseCase    auth.UseCase
	ChatUseCase    agent.UseCase
	MaxUploadBytes int64
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mwConfig: middleware.Config{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestsPerMin: cfg.RequestsPerMin,
		},
		metrics:        recorder,
		gatherer:       cfg.Gatherer,
		courseUC:       cfg.CourseUseCase,
		authUC:         cfg.AuthUseCase,
		chatUC:         cfg.ChatUseCase,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
