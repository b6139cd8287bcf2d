package http

import (
	"errors"
	"net/http"

	"course-outline-planner/internal/agent"
	"course-outline-planner/internal/auth"
	pkgErrors "course-outline-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrNotConnected):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Google auth failed: connect Google Calendar first")
	case errors.Is(err, agent.ErrEmptyTranscript):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
