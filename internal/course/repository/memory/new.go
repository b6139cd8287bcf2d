package memory

import (
	"sync"

	"course-outline-planner/internal/course/repository"
	"course-outline-planner/internal/model"
)

type implRepository struct {
	mu      sync.RWMutex
	courses map[string]model.Course
	order   []string
	events  []model.Event
}

// New creates an empty in-memory course store. Data lives for the process lifetime.
func New() repository.Repository {
	return &implRepository{
		courses: make(map[string]model.Course),
	}
}
