package usecase

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"course-outline-planner/internal/model"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and prose around the
// outermost JSON object.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// toEvent maps one extracted entry. ok is false when the entry has no date.
func (uc *implUseCase) toEvent(courseID string, ev outlineEvt) (model.Event, bool, error) {
	date := strings.TrimSpace(deref(ev.Date))
	if date == "" {
		return model.Event{}, false, nil
	}

	start, err := uc.dateMath.ParseDateClock(date, deref(ev.StartTime))
	if err != nil {
		return model.Event{}, false, err
	}

	event := model.Event{
		ID:         uuid.NewString(),
		CourseID:   courseID,
		Title:      orDefault(deref(ev.Title), untitled),
		Type:       orDefault(deref(ev.Type), model.EventTypeOther),
		Start:      start,
		Location:   deref(ev.Location),
		SourcePage: ev.SourcePage.n,
	}

	if clock := strings.TrimSpace(deref(ev.EndTime)); clock != "" {
		end, err := uc.dateMath.ParseDateClock(date, clock)
		if err != nil {
			return model.Event{}, false, err
		}
		event.End = &end
	}

	return event, true, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func snippet(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
