package http

import (
	"errors"
	"net/http"

	"course-outline-planner/internal/auth"
	pkgErrors "course-outline-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidState):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid or expired OAuth state")
	case errors.Is(err, auth.ErrMissingCode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "missing authorization code")
	case errors.Is(err, auth.ErrClientSecretsMissing):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Google client secrets file not found")
	case errors.Is(err, auth.ErrExchangeFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "failed to exchange authorization code")
	case errors.Is(err, auth.ErrNotConnected):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Google Calendar is not connected")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
