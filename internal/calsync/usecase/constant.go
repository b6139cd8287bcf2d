package usecase

import "time"

const (
	LogPrefixSync            = "internal.calsync.usecase.Sync"
	LogPrefixListEvents      = "internal.calsync.usecase.ListEvents"
	LogPrefixDeleteEvent     = "internal.calsync.usecase.DeleteEvent"
	LogPrefixRescheduleEvent = "internal.calsync.usecase.RescheduleEvent"
	LogPrefixCreateEvent     = "internal.calsync.usecase.CreateEvent"
)

const (
	DefaultTermWeeks     = 16
	DefaultEventDuration = time.Hour
	DefaultMaxResults    = 250

	// assessmentColorID is the Google Calendar "tangerine" color.
	assessmentColorID = "6"
	rrulePrefix       = "RRULE:"
)

var (
	termEndMarkers    = []string{"final", "exam"}
	recurringMarkers  = []string{"class", "tutorial", "lab"}
	assessmentTypeSet = map[string]bool{"midterm": true, "final": true, "test": true, "quiz": true}
)
