package tools

import (
	"context"

	"course-outline-planner/internal/agent"
	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/model"
	pkgLog "course-outline-planner/pkg/log"
)

type UpdateCalendarEventTimeTool struct {
	calSync calsync.UseCase
	l       pkgLog.Logger
}

func NewUpdateCalendarEventTimeTool(calSync calsync.UseCase, l pkgLog.Logger) *UpdateCalendarEventTimeTool {
	return &UpdateCalendarEventTimeTool{calSync: calSync, l: l}
}

func (t *UpdateCalendarEventTimeTool) Name() string {
	return "update_calendar_event_time"
}

func (t *UpdateCalendarEventTimeTool) Description() string {
	return "Move or reschedule an event by providing new start and end " +
		"datetime values in ISO 8601 format."
}

func (t *UpdateCalendarEventTimeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"event_id":      stringProp("The event id."),
			"new_start_iso": stringProp("New start."),
			"new_end_iso":   stringProp("New end."),
		},
		"required": []string{"event_id", "new_start_iso", "new_end_iso"},
	}
}

func (t *UpdateCalendarEventTimeTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input calsync.RescheduleEventInput
	if err := decodeArgs(params, &input); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "update_calendar_event_time: %s -> %s / %s", input.EventID, input.NewStartISO, input.NewEndISO)
	return t.calSync.RescheduleEvent(ctx, model.GetScopeFromContext(ctx), input), nil
}

var _ agent.Tool = (*UpdateCalendarEventTimeTool)(nil)
