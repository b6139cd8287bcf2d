package usecase

import (
	"time"

	"course-outline-planner/internal/calsync"
	"course-outline-planner/pkg/datemath"
	pkgLog "course-outline-planner/pkg/log"
	"course-outline-planner/pkg/metrics"
)

type implUseCase struct {
	l         pkgLog.Logger
	calendars calsync.CalendarProvider
	dateMath  *datemath.Parser
	timezone  string
	termWeeks int
	metrics   metrics.Recorder
	now       func() time.Time
}

// New creates the calendar sync engine. Event times are written in the
// parser's timezone; termWeeks bounds weekly expansion when a course has
// no other upper bound.
func New(l pkgLog.Logger, calendars calsync.CalendarProvider, dateMath *datemath.Parser, termWeeks int, m metrics.Recorder) *implUseCase {
	if termWeeks <= 0 {
		termWeeks = DefaultTermWeeks
	}
	if m == nil {
		m = metrics.Nop{}
	}
	return &implUseCase{
		l:         l,
		calendars: calendars,
		dateMath:  dateMath,
		timezone:  dateMath.Location().String(),
		termWeeks: termWeeks,
		metrics:   m,
		now:       time.Now,
	}
}
