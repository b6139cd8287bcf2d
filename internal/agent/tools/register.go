package tools

import (
	"course-outline-planner/internal/agent"
	"course-outline-planner/internal/calsync"
	pkgLog "course-outline-planner/pkg/log"
)

// NewCalendarRegistry registers the calendar tools in the order they are
// offered to the model.
func NewCalendarRegistry(calSync calsync.UseCase, l pkgLog.Logger) *agent.ToolRegistry {
	registry := agent.NewToolRegistry()
	registry.Register(NewListCalendarEventsTool(calSync, l))
	registry.Register(NewDeleteCalendarEventTool(calSync, l))
	registry.Register(NewUpdateCalendarEventTimeTool(calSync, l))
	registry.Register(NewCreateCalendarEventTool(calSync, l))
	return registry
}
