package repository

import (
	"context"

	"course-outline-planner/internal/model"
)

// Repository is the composed interface for the course data store.
type Repository interface {
	CourseRepository
	EventRepository
}

// CourseRepository stores courses together with their events.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course model.Course) (model.Course, error)
	GetCourse(ctx context.Context, id string) (model.Course, error)
	ListCourses(ctx context.Context) ([]model.Course, error)
}

// EventRepository reads events across courses.
type EventRepository interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
}
