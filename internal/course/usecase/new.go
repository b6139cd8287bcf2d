package usecase

import (
	"time"

	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/course/repository"
	"course-outline-planner/internal/extraction"
	pkgLog "course-outline-planner/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	extractor extraction.UseCase
	calSync   calsync.UseCase
	timezone  string
	now       func() time.Time
}

// New creates the course use case. timezone is written into exported
// calendars as X-WR-TIMEZONE.
func New(l pkgLog.Logger, repo repository.Repository, extractor extraction.UseCase, calSync calsync.UseCase, timezone string) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		extractor: extractor,
		calSync:   calSync,
		timezone:  timezone,
		now:       time.Now,
	}
}
