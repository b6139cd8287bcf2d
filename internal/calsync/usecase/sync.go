package usecase

import (
	"context"
	"fmt"
	"strings"

	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/gcalendar"
)

// Sync upserts each planned occurrence by its app_event_id tag. A remote
// failure is recorded for that tag and the batch continues.
func (uc *implUseCase) Sync(ctx context.Context, sc model.Scope, course model.Course) (calsync.SyncOutput, error) {
	api, calendarID, err := uc.calendars.Calendar(ctx, sc)
	if err != nil {
		return calsync.SyncOutput{}, err
	}

	occurrences := uc.Plan(course)
	out := calsync.SyncOutput{
		CourseID: course.ID,
		Results:  make([]calsync.SyncResult, 0, len(occurrences)),
	}

	counts := map[string]int{}
	for _, occ := range occurrences {
		res := uc.upsert(ctx, api, calendarID, occ)
		uc.metrics.RecordSync(res.Status)
		counts[res.Status]++
		out.Results = append(out.Results, res)
	}

	uc.l.Infof(ctx, "%s: course=%s session=%s occurrences=%d created=%d updated=%d errors=%d",
		LogPrefixSync, course.ID, sc.SessionID, len(occurrences),
		counts[calsync.StatusCreated], counts[calsync.StatusUpdated], counts[calsync.StatusError])

	return out, nil
}

func (uc *implUseCase) upsert(ctx context.Context, api gcalendar.API, calendarID string, occ calsync.Occurrence) calsync.SyncResult {
	input := uc.eventInput(occ)

	// A failed lookup is treated as "not found".
	existing, err := api.FindByTag(ctx, calendarID, calsync.PropAppEventID, occ.Tag)
	if err != nil {
		uc.l.Warnf(ctx, "%s: lookup %s failed, inserting: %v", LogPrefixSync, occ.Tag, err)
		existing = nil
	}

	if existing != nil {
		updated, err := api.UpdateEvent(ctx, calendarID, existing.ID, input)
		if err != nil {
			uc.l.Errorf(ctx, "%s: update %s: %v", LogPrefixSync, occ.Tag, err)
			return calsync.SyncResult{EventID: occ.Tag, Status: calsync.StatusError, Error: err.Error()}
		}
		return calsync.SyncResult{EventID: occ.Tag, Status: calsync.StatusUpdated, RemoteID: updated.ID}
	}

	created, err := api.InsertEvent(ctx, calendarID, input)
	if err != nil {
		uc.l.Errorf(ctx, "%s: insert %s: %v", LogPrefixSync, occ.Tag, err)
		return calsync.SyncResult{EventID: occ.Tag, Status: calsync.StatusError, Error: err.Error()}
	}
	return calsync.SyncResult{EventID: occ.Tag, Status: calsync.StatusCreated, RemoteID: created.ID}
}

// eventInput builds the remote payload for one occurrence.
func (uc *implUseCase) eventInput(occ calsync.Occurrence) gcalendar.EventInput {
	in := gcalendar.EventInput{
		Summary:     occ.Title,
		Description: fmt.Sprintf("%s (Course ID: %s)", strings.ToUpper(occ.Type), occ.CourseID),
		Location:    occ.Location,
		StartTime:   occ.Start.In(uc.dateMath.Location()),
		EndTime:     occ.End.In(uc.dateMath.Location()),
		Timezone:    uc.timezone,
		PrivateProperties: map[string]string{
			calsync.PropSource:     calsync.SourceCourseOutline,
			calsync.PropCourseID:   occ.CourseID,
			calsync.PropAppEventID: occ.Tag,
		},
	}
	if isAssessment(occ.Type) {
		in.ColorID = assessmentColorID
	}
	return in
}
