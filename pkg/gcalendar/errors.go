package gcalendar

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	ErrEventNotFound       = errors.New("calendar event not found")
	ErrInvalidClientSecret = errors.New("invalid OAuth client secrets")
)

// isNotFound reports whether err is a 404/410 from the Calendar API.
func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone
	}
	return false
}
