package tools

import (
	"context"

	"course-outline-planner/internal/agent"
	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/model"
	pkgLog "course-outline-planner/pkg/log"
)

type ListCalendarEventsTool struct {
	calSync calsync.UseCase
	l       pkgLog.Logger
}

func NewListCalendarEventsTool(calSync calsync.UseCase, l pkgLog.Logger) *ListCalendarEventsTool {
	return &ListCalendarEventsTool{calSync: calSync, l: l}
}

func (t *ListCalendarEventsTool) Name() string {
	return "list_calendar_events"
}

func (t *ListCalendarEventsTool) Description() string {
	return "List calendar events between two ISO datetimes. " +
		"Use this to find specific events the user is referring to " +
		"(e.g. certain course, specific weeks, etc.)."
}

func (t *ListCalendarEventsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"date_from":   stringProp("Start of window (ISO)."),
			"date_to":     stringProp("End of window (ISO)."),
			"search_text": stringProp("Optional text to match against summary/description/location."),
			"max_results": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of events to return.",
				"default":     50,
			},
		},
		"required": []string{"date_from", "date_to"},
	}
}

func (t *ListCalendarEventsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input calsync.ListEventsInput
	if err := decodeArgs(params, &input); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "list_calendar_events: %s to %s (q=%q)", input.DateFrom, input.DateTo, input.SearchText)
	return t.calSync.ListEvents(ctx, model.GetScopeFromContext(ctx), input), nil
}

var _ agent.Tool = (*ListCalendarEventsTool)(nil)
