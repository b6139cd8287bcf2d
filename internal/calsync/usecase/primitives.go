package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/gcalendar"
)

// ListEvents lists single events between two timestamps. Timestamps without
// an offset are read in the calendar timezone.
func (uc *implUseCase) ListEvents(ctx context.Context, sc model.Scope, input calsync.ListEventsInput) calsync.ListEventsOutput {
	now := uc.now()

	if input.DateFrom == "" || input.DateTo == "" {
		return calsync.ListEventsOutput{Error: fmt.Sprintf("%v: date_from and date_to", calsync.ErrMissingArgument)}
	}
	from, err := uc.dateMath.ParseTimestamp(input.DateFrom, now)
	if err != nil {
		return calsync.ListEventsOutput{Error: fmt.Sprintf("invalid date_from: %v", err)}
	}
	to, err := uc.dateMath.ParseRangeEnd(input.DateTo, now)
	if err != nil {
		return calsync.ListEventsOutput{Error: fmt.Sprintf("invalid date_to: %v", err)}
	}

	maxResults := input.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	api, calendarID, err := uc.calendars.Calendar(ctx, sc)
	if err != nil {
		return calsync.ListEventsOutput{Error: err.Error()}
	}

	events, err := api.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    from,
		TimeMax:    to,
		Query:      strings.TrimSpace(input.SearchText),
		MaxResults: int64(maxResults),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixListEvents, err)
		return calsync.ListEventsOutput{Error: err.Error()}
	}

	summaries := make([]calsync.EventSummary, 0, len(events))
	for _, ev := range events {
		summaries = append(summaries, calsync.EventSummary{
			ID:       ev.ID,
			Summary:  ev.Summary,
			Start:    ev.Start,
			End:      ev.End,
			Location: ev.Location,
		})
	}
	return calsync.ListEventsOutput{OK: true, Events: summaries}
}

// DeleteEvent removes one remote event.
func (uc *implUseCase) DeleteEvent(ctx context.Context, sc model.Scope, input calsync.DeleteEventInput) calsync.DeleteEventOutput {
	if input.EventID == "" {
		return calsync.DeleteEventOutput{Error: fmt.Sprintf("%v: event_id", calsync.ErrMissingArgument)}
	}

	api, calendarID, err := uc.calendars.Calendar(ctx, sc)
	if err != nil {
		return calsync.DeleteEventOutput{Error: err.Error(), EventID: input.EventID}
	}

	if err := api.DeleteEvent(ctx, calendarID, input.EventID); err != nil {
		uc.l.Warnf(ctx, "%s: %s: %v", LogPrefixDeleteEvent, input.EventID, err)
		return calsync.DeleteEventOutput{Error: err.Error(), EventID: input.EventID}
	}

	uc.l.Infof(ctx, "%s: deleted %s", LogPrefixDeleteEvent, input.EventID)
	return calsync.DeleteEventOutput{OK: true, DeletedEventID: input.EventID}
}

// RescheduleEvent moves one remote event, keeping its other fields.
func (uc *implUseCase) RescheduleEvent(ctx context.Context, sc model.Scope, input calsync.RescheduleEventInput) calsync.RescheduleEventOutput {
	fail := func(err error) calsync.RescheduleEventOutput {
		return calsync.RescheduleEventOutput{Error: err.Error(), EventID: input.EventID}
	}

	if input.EventID == "" || input.NewStartISO == "" || input.NewEndISO == "" {
		return fail(fmt.Errorf("%w: event_id, new_start_iso and new_end_iso", calsync.ErrMissingArgument))
	}
	start, end, err := uc.parseRange(input.NewStartISO, input.NewEndISO)
	if err != nil {
		return fail(err)
	}

	api, calendarID, err := uc.calendars.Calendar(ctx, sc)
	if err != nil {
		return fail(err)
	}

	updated, err := api.RescheduleEvent(ctx, calendarID, input.EventID, gcalendar.RescheduleRequest{
		StartTime: start,
		EndTime:   end,
		Timezone:  uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: %s: %v", LogPrefixRescheduleEvent, input.EventID, err)
		return fail(err)
	}

	return calsync.RescheduleEventOutput{
		OK:             true,
		UpdatedEventID: updated.ID,
		NewStart:       updated.Start,
		NewEnd:         updated.End,
	}
}

// CreateEvent inserts a new remote event, optionally recurring.
func (uc *implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input calsync.CreateEventInput) calsync.CreateEventOutput {
	fail := func(err error) calsync.CreateEventOutput {
		return calsync.CreateEventOutput{Error: err.Error()}
	}

	if strings.TrimSpace(input.Title) == "" || input.StartISO == "" || input.EndISO == "" {
		return fail(fmt.Errorf("%w: title, start_iso and end_iso", calsync.ErrMissingArgument))
	}
	start, end, err := uc.parseRange(input.StartISO, input.EndISO)
	if err != nil {
		return fail(err)
	}

	eventInput := gcalendar.EventInput{
		Summary:     input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.timezone,
	}
	if input.RecurrenceRule != "" {
		rule, err := normalizeRRule(input.RecurrenceRule)
		if err != nil {
			return fail(err)
		}
		eventInput.Recurrence = []string{rule}
	}

	api, calendarID, err := uc.calendars.Calendar(ctx, sc)
	if err != nil {
		return fail(err)
	}

	created, err := api.InsertEvent(ctx, calendarID, eventInput)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixCreateEvent, err)
		return fail(err)
	}

	uc.l.Infof(ctx, "%s: created %s %q", LogPrefixCreateEvent, created.ID, created.Summary)
	return calsync.CreateEventOutput{
		OK:             true,
		CreatedEventID: created.ID,
		Summary:        created.Summary,
		Start:          created.Start,
		End:            created.End,
	}
}

func (uc *implUseCase) parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	now := uc.now()
	start, err := uc.dateMath.ParseTimestamp(startStr, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start: %w", err)
	}
	end, err := uc.dateMath.ParseTimestamp(endStr, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end: %w", err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, calsync.ErrInvalidTimeRange
	}
	return start, end, nil
}

// normalizeRRule validates an RFC 5545 rule and returns it in the
// "RRULE:..." form Google Calendar expects.
func normalizeRRule(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	opt, err := rrule.StrToROption(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", calsync.ErrInvalidRecurrence, err)
	}
	return rrulePrefix + opt.RRuleString(), nil
}
