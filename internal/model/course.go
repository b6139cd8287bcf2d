package model

import "time"

// Event types that get special treatment during calendar sync.
const (
	EventTypeOther = "other"
)

// Event is one dated item extracted from a course outline.
// End is optional; sync applies a one-hour default.
type Event struct {
	ID         string     `json:"id"`
	CourseID   string     `json:"course_id"`
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	Start      time.Time  `json:"start"`
	End        *time.Time `json:"end,omitempty"`
	Location   string     `json:"location,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	SourcePage *int       `json:"source_page,omitempty"`
}

// Course is the result of one successful outline extraction.
type Course struct {
	ID               string  `json:"id"`
	Name             string  `json:"name,omitempty"`
	Code             string  `json:"code,omitempty"`
	Term             string  `json:"term,omitempty"`
	RawOutlineFileID string  `json:"raw_outline_file_id,omitempty"`
	Events           []Event `json:"events"`
}
