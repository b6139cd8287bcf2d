package http

import (
	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/model"
)

// --- Response DTOs ---

// Courses and events are rendered as their model documents. These aliases
// only exist so the swagger annotations have names to refer to.
type courseResp = model.Course

type eventResp = model.Event

type syncResp = calsync.SyncOutput

func newCourseListResp(courses []model.Course) []courseResp {
	if courses == nil {
		return []courseResp{}
	}
	return courses
}

func newEventListResp(events []model.Event) []eventResp {
	if events == nil {
		return []eventResp{}
	}
	return events
}

func newSyncResp(out calsync.SyncOutput) syncResp {
	if out.Results == nil {
		out.Results = []calsync.SyncResult{}
	}
	return out
}
