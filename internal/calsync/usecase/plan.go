package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/model"
)

// Plan expands recurring events weekly up to the term bound. One-off events
// map to a single occurrence tagged with the event id.
func (uc *implUseCase) Plan(course model.Course) []calsync.Occurrence {
	bound, hasBound := termUpperBound(course.Events, uc.termWeeks)

	occurrences := make([]calsync.Occurrence, 0, len(course.Events))
	for _, ev := range course.Events {
		duration := eventDuration(ev)

		if !isRecurring(ev.Type) {
			occurrences = append(occurrences, newOccurrence(ev, ev.ID, ev.Start, duration))
			continue
		}
		if !hasBound {
			continue
		}

		for i, start := range weeklyStarts(ev.Start, bound) {
			tag := fmt.Sprintf("%s_wk%d", ev.ID, i)
			occurrences = append(occurrences, newOccurrence(ev, tag, start, duration))
		}
	}
	return occurrences
}

// termUpperBound picks the latest final/exam, else the latest event, else the
// earliest start plus termWeeks. ok is false for a course without events.
func termUpperBound(events []model.Event, termWeeks int) (time.Time, bool) {
	if len(events) == 0 {
		return time.Time{}, false
	}

	var bound time.Time
	for _, ev := range events {
		if containsAny(ev.Type, termEndMarkers) && ev.Start.After(bound) {
			bound = ev.Start
		}
	}
	if !bound.IsZero() {
		return bound, true
	}

	earliest := events[0].Start
	for _, ev := range events {
		if ev.Start.After(bound) {
			bound = ev.Start
		}
		if ev.Start.Before(earliest) {
			earliest = ev.Start
		}
	}
	if !bound.IsZero() {
		return bound, true
	}

	return earliest.AddDate(0, 0, 7*termWeeks), true
}

// weeklyStarts lists start, start+7d, ... while <= bound, keeping the wall clock.
func weeklyStarts(start, bound time.Time) []time.Time {
	if start.After(bound) {
		return nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Dtstart: start,
		Until:   bound,
	})
	if err != nil {
		return nil
	}
	return rule.All()
}

func isRecurring(eventType string) bool {
	return containsAny(eventType, recurringMarkers)
}

func isAssessment(eventType string) bool {
	return assessmentTypeSet[strings.ToLower(strings.TrimSpace(eventType))]
}

func containsAny(s string, markers []string) bool {
	s = strings.ToLower(s)
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func eventDuration(ev model.Event) time.Duration {
	if ev.End == nil {
		return DefaultEventDuration
	}
	return ev.End.Sub(ev.Start)
}

func newOccurrence(ev model.Event, tag string, start time.Time, duration time.Duration) calsync.Occurrence {
	return calsync.Occurrence{
		Tag:      tag,
		EventID:  ev.ID,
		CourseID: ev.CourseID,
		Title:    ev.Title,
		Type:     ev.Type,
		Location: ev.Location,
		Start:    start,
		End:      start.Add(duration),
	}
}
