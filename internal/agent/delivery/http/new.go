package http

import (
	"course-outline-planner/internal/agent"
	"course-outline-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc agent.UseCase
}

// New creates the calendar chat HTTP handler.
func New(l log.Logger, uc agent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
