package http

import (
	"course-outline-planner/internal/course"
	"course-outline-planner/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       course.UseCase
	maxBytes int64
}

// New creates the course HTTP handler. maxBytes caps the uploaded PDF size.
func New(l log.Logger, uc course.UseCase, maxBytes int64) *handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &handler{
		l:        l,
		uc:       uc,
		maxBytes: maxBytes,
	}
}
