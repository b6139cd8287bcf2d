package memory

import (
	"context"
	"fmt"

	"course-outline-planner/internal/course/repository"
	"course-outline-planner/internal/model"
)

func (r *implRepository) CreateCourse(ctx context.Context, course model.Course) (model.Course, error) {
	if course.ID == "" {
		return model.Course{}, fmt.Errorf("%w: missing course id", repository.ErrFailedToInsert)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[course.ID]; ok {
		return model.Course{}, fmt.Errorf("%w: duplicate course id %s", repository.ErrFailedToInsert, course.ID)
	}

	stored := cloneCourse(course)
	r.courses[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	r.events = append(r.events, stored.Events...)

	return cloneCourse(stored), nil
}

func (r *implRepository) GetCourse(ctx context.Context, id string) (model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.courses[id]
	if !ok {
		return model.Course{}, repository.ErrNotFound
	}
	return cloneCourse(course), nil
}

func (r *implRepository) ListCourses(ctx context.Context) ([]model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]model.Course, 0, len(r.order))
	for _, id := range r.order {
		courses = append(courses, cloneCourse(r.courses[id]))
	}
	return courses, nil
}

func (r *implRepository) ListEvents(ctx context.Context) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]model.Event, len(r.events))
	copy(events, r.events)
	return events, nil
}

// cloneCourse copies the event slice so callers cannot mutate stored data.
func cloneCourse(c model.Course) model.Course {
	events := make([]model.Event, len(c.Events))
	copy(events, c.Events)
	c.Events = events
	return c
}
