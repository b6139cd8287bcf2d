package http

import (
	"errors"
	"net/http"

	"course-outline-planner/internal/auth"
	"course-outline-planner/internal/course"
	pkgErrors "course-outline-planner/pkg/errors"
)

const DefaultMaxUploadBytes = 20 << 20

var (
	errMissingFile  = errors.New("missing multipart field \"file\"")
	errNotPDF       = errors.New("please upload a PDF file")
	errFileTooLarge = errors.New("uploaded file is too large")
	errReadUpload   = errors.New("failed to read uploaded file")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognized renders as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, course.ErrCourseNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Course not found")
	case errors.Is(err, course.ErrEmptyUpload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrNotConnected):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Google Calendar is not connected")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
