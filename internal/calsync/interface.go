package calsync

import (
	"context"

	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Plan expands a course into the calendar occurrences sync would write.
	Plan(course model.Course) []Occurrence

	// Sync upserts every occurrence of the course into the session's calendar.
	Sync(ctx context.Context, sc model.Scope, course model.Course) (SyncOutput, error)

	// Calendar primitives used by the chat tools. Remote failures are
	// reported in the output, never returned.
	ListEvents(ctx context.Context, sc model.Scope, input ListEventsInput) ListEventsOutput
	DeleteEvent(ctx context.Context, sc model.Scope, input DeleteEventInput) DeleteEventOutput
	RescheduleEvent(ctx context.Context, sc model.Scope, input RescheduleEventInput) RescheduleEventOutput
	CreateEvent(ctx context.Context, sc model.Scope, input CreateEventInput) CreateEventOutput
}

// CalendarProvider hands out a calendar client bound to the session's credential
// together with the calendar id to write to.
type CalendarProvider interface {
	Calendar(ctx context.Context, sc model.Scope) (gcalendar.API, string, error)
}
