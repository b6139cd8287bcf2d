package http

import (
	"course-outline-planner/internal/auth"
	"course-outline-planner/pkg/log"
)

type handler struct {
	l            log.Logger
	uc           auth.UseCase
	secureCookie bool
}

// New creates the auth HTTP handler. secureCookie marks the session cookie
// set on callback as Secure.
func New(l log.Logger, uc auth.UseCase, secureCookie bool) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		secureCookie: secureCookie,
	}
}
