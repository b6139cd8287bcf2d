package orchestrator

import (
	"fmt"
	"time"
)

// Date formats
const (
	DateFormatISO        = "2006-01-02"
	DateTimeFormatPrompt = "2006-01-02 15:04"
)

// buildTimeContext creates a temporal context string for the model.
func buildTimeContext(now time.Time, loc *time.Location) string {
	now = now.In(loc)

	// Week runs Monday to Sunday.
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		loc.String(),
		now.Format(DateTimeFormatPrompt),
		now.Weekday().String(),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		tomorrow.Format(DateFormatISO),
	)
}
