package gcalendar

import (
	"context"
	"time"
)

// API is the part of Google Calendar v3 the service relies on.
// Implementations are bound to one set of user credentials.
type API interface {
	// FindByTag returns the first event carrying the private extended property
	// key=value, or nil when none exists.
	FindByTag(ctx context.Context, calendarID, key, value string) (*Event, error)
	InsertEvent(ctx context.Context, calendarID string, in EventInput) (*Event, error)
	UpdateEvent(ctx context.Context, calendarID, eventID string, in EventInput) (*Event, error)
	GetEvent(ctx context.Context, calendarID, eventID string) (*Event, error)
	RescheduleEvent(ctx context.Context, calendarID, eventID string, req RescheduleRequest) (*Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
	// PrimaryCalendarID returns the id of the user's primary calendar, which is their email.
	PrimaryCalendarID(ctx context.Context) (string, error)
}

// EventInput is the writable part of an event.
type EventInput struct {
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/Toronto"
	ColorID     string
	// PrivateProperties become extendedProperties.private.
	PrivateProperties map[string]string
	// Recurrence holds RRULE/EXRULE/RDATE/EXDATE lines.
	Recurrence []string
}

// RescheduleRequest moves an event to a new time range.
type RescheduleRequest struct {
	StartTime time.Time
	EndTime   time.Time
	Timezone  string
}

// Event is a simplified representation of a Google Calendar event.
// Start and End keep the wire value: an RFC3339 dateTime or an all-day date.
type Event struct {
	ID                string
	Summary           string
	Description       string
	Location          string
	HtmlLink          string
	Start             string
	End               string
	Recurrence        []string
	PrivateProperties map[string]string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Query      string
	MaxResults int64
}
