package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"course-outline-planner/internal/model"
)

const (
	SessionCookieName = "cop_session"
	SessionHeaderName = "X-Session-ID"
	maxSessionIDLen   = 128
)

// Session resolves the session id from the cookie or the X-Session-ID header
// and stores the scope in the request context. Without either, the default
// session is used.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			sessionID = cookie
		}
		if h := c.GetHeader(SessionHeaderName); h != "" {
			sessionID = h
		}

		sessionID = strings.TrimSpace(sessionID)
		if sessionID == "" || len(sessionID) > maxSessionIDLen {
			sessionID = model.DefaultSessionID
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{SessionID: sessionID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
