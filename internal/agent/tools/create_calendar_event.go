package tools

import (
	"context"

	"course-outline-planner/internal/agent"
	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/model"
	pkgLog "course-outline-planner/pkg/log"
)

type CreateCalendarEventTool struct {
	calSync calsync.UseCase
	l       pkgLog.Logger
}

func NewCreateCalendarEventTool(calSync calsync.UseCase, l pkgLog.Logger) *CreateCalendarEventTool {
	return &CreateCalendarEventTool{calSync: calSync, l: l}
}

func (t *CreateCalendarEventTool) Name() string {
	return "create_calendar_event"
}

func (t *CreateCalendarEventTool) Description() string {
	return "Create a new event in the user's Google Calendar. " +
		"Use this for things like study sessions, office hours, " +
		"one-off reminders, or new recurring classes."
}

func (t *CreateCalendarEventTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title":           stringProp("Event title."),
			"start_iso":       stringProp("Start datetime ISO."),
			"end_iso":         stringProp("End datetime ISO."),
			"description":     stringProp(""),
			"location":        stringProp(""),
			"recurrence_rule": stringProp("RFC5545 RRULE if recurring."),
		},
		"required": []string{"title", "start_iso", "end_iso"},
	}
}

func (t *CreateCalendarEventTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input calsync.CreateEventInput
	if err := decodeArgs(params, &input); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "create_calendar_event: %q at %s", input.Title, input.StartISO)
	return t.calSync.CreateEvent(ctx, model.GetScopeFromContext(ctx), input), nil
}

var _ agent.Tool = (*CreateCalendarEventTool)(nil)
