package course

import (
	"context"

	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Upload extracts a course from an outline PDF and stores it.
	Upload(ctx context.Context, input UploadInput) (model.Course, error)

	// List returns all courses in upload order.
	List(ctx context.Context) ([]model.Course, error)

	// Detail returns one course with its events.
	Detail(ctx context.Context, id string) (model.Course, error)

	// Events returns the events of one course.
	Events(ctx context.Context, id string) ([]model.Event, error)

	// AllEvents returns the events of every course.
	AllEvents(ctx context.Context) ([]model.Event, error)

	// Sync pushes one course into the session's Google Calendar.
	Sync(ctx context.Context, sc model.Scope, id string) (calsync.SyncOutput, error)

	// ExportICS renders one course as an iCalendar file.
	ExportICS(ctx context.Context, id string) (ExportICSOutput, error)
}
