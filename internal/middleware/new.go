package middleware

import (
	"github.com/gin-gonic/gin"

	"course-outline-planner/pkg/log"
	"course-outline-planner/pkg/metrics"
)

// Config holds the middleware settings.
type Config struct {
	AllowedOrigins []string
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	cors    gin.HandlerFunc
	limiter *rateLimiter
	metrics metrics.Recorder
}

func New(l log.Logger, cfg Config, m metrics.Recorder) Middleware {
	origins := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[o] = true
	}
	if m == nil {
		m = metrics.Nop{}
	}
	return Middleware{
		l:       l,
		cors:    newCORS(origins),
		limiter: newRateLimiter(cfg.RequestsPerMin),
		metrics: m,
	}
}
