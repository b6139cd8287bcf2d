package calsync

import "time"

// Sync result statuses.
const (
	StatusCreated = "created"
	StatusUpdated = "updated"
	StatusError   = "error"
)

// Private extended properties written on every synced event.
const (
	PropSource     = "source"
	PropCourseID   = "course_id"
	PropAppEventID = "app_event_id"

	SourceCourseOutline = "course-outline"
)

// Occurrence is one concrete calendar entry derived from a course event.
type Occurrence struct {
	Tag      string
	EventID  string
	CourseID string
	Title    string
	Type     string
	Location string
	Start    time.Time
	End      time.Time
}

// SyncResult reports the outcome for one occurrence tag.
type SyncResult struct {
	EventID  string `json:"event_id"`
	Status   string `json:"status"`
	RemoteID string `json:"gcal_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// SyncOutput is the per-tag report of one course sync.
type SyncOutput struct {
	CourseID string       `json:"course_id"`
	Results  []SyncResult `json:"synced"`
}

// --- Tool primitive inputs ---

type ListEventsInput struct {
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`
	SearchText string `json:"search_text,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

type DeleteEventInput struct {
	EventID string `json:"event_id"`
}

type RescheduleEventInput struct {
	EventID     string `json:"event_id"`
	NewStartISO string `json:"new_start_iso"`
	NewEndISO   string `json:"new_end_iso"`
}

type CreateEventInput struct {
	Title          string `json:"title"`
	StartISO       string `json:"start_iso"`
	EndISO         string `json:"end_iso"`
	Description    string `json:"description,omitempty"`
	Location       string `json:"location,omitempty"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
}

// --- Tool primitive outputs ---

// EventSummary is the compact event view returned to the model.
type EventSummary struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
}

type ListEventsOutput struct {
	OK     bool           `json:"ok"`
	Events []EventSummary `json:"events,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type DeleteEventOutput struct {
	OK             bool   `json:"ok"`
	DeletedEventID string `json:"deleted_event_id,omitempty"`
	Error          string `json:"error,omitempty"`
	EventID        string `json:"event_id,omitempty"`
}

type RescheduleEventOutput struct {
	OK             bool   `json:"ok"`
	UpdatedEventID string `json:"updated_event_id,omitempty"`
	NewStart       string `json:"new_start,omitempty"`
	NewEnd         string `json:"new_end,omitempty"`
	Error          string `json:"error,omitempty"`
	EventID        string `json:"event_id,omitempty"`
}

type CreateEventOutput struct {
	OK             bool   `json:"ok"`
	CreatedEventID string `json:"created_event_id,omitempty"`
	Summary        string `json:"summary,omitempty"`
	Start          string `json:"start,omitempty"`
	End            string `json:"end,omitempty"`
	Error          string `json:"error,omitempty"`
}

func (o ListEventsOutput) Succeeded() bool      { return o.OK }
func (o DeleteEventOutput) Succeeded() bool     { return o.OK }
func (o RescheduleEventOutput) Succeeded() bool { return o.OK }
func (o CreateEventOutput) Succeeded() bool     { return o.OK }
