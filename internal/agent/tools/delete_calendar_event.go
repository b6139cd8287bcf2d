package tools

import (
	"context"

	"course-outline-planner/internal/agent"
	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/model"
	pkgLog "course-outline-planner/pkg/log"
)

type DeleteCalendarEventTool struct {
	calSync calsync.UseCase
	l       pkgLog.Logger
}

func NewDeleteCalendarEventTool(calSync calsync.UseCase, l pkgLog.Logger) *DeleteCalendarEventTool {
	return &DeleteCalendarEventTool{calSync: calSync, l: l}
}

func (t *DeleteCalendarEventTool) Name() string {
	return "delete_calendar_event"
}

func (t *DeleteCalendarEventTool) Description() string {
	return "Delete a calendar event by its event_id."
}

func (t *DeleteCalendarEventTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"event_id": stringProp("The event's Google Calendar id."),
		},
		"required": []string{"event_id"},
	}
}

func (t *DeleteCalendarEventTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input calsync.DeleteEventInput
	if err := decodeArgs(params, &input); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "delete_calendar_event: %s", input.EventID)
	return t.calSync.DeleteEvent(ctx, model.GetScopeFromContext(ctx), input), nil
}

var _ agent.Tool = (*DeleteCalendarEventTool)(nil)
