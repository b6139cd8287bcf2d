package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const corsMaxAge = 24 * time.Hour

var (
	corsAllowMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}
	corsAllowHeaders = []string{
		"Origin", "Content-Type", "Authorization",
		SessionHeaderName, RequestIDHeader,
	}
)

// newCORS allows only the configured origins, with credentials. Preflight
// requests are answered with 204; other origins get 403.
func newCORS(origins map[string]bool) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return origins[origin]
		},
		AllowMethods:     corsAllowMethods,
		AllowHeaders:     corsAllowHeaders,
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}

// CORS returns the CORS handler built from Config.AllowedOrigins.
func (m Middleware) CORS() gin.HandlerFunc {
	return m.cors
}
