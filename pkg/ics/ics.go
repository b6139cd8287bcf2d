// Package ics renders events as an iCalendar (RFC 5545) document.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"
)

const (
	ProductID   = "-//course-outline-planner//EN"
	ContentType = "text/calendar; charset=utf-8"
)

// Entry is one VEVENT.
type Entry struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// Calendar is a named collection of entries.
type Calendar struct {
	Name     string
	Timezone string
	Entries  []Entry
}

// Render serializes cal. stamp is written as DTSTAMP on every event.
func Render(cal Calendar, stamp time.Time) string {
	out := ical.NewCalendar()
	out.SetMethod(ical.MethodPublish)
	out.SetProductId(ProductID)
	if cal.Name != "" {
		out.SetXWRCalName(cal.Name)
	}
	if cal.Timezone != "" {
		out.SetXWRTimezone(cal.Timezone)
	}

	for _, e := range cal.Entries {
		ev := out.AddEvent(e.UID)
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End)
		ev.SetSummary(e.Summary)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
	}

	return out.Serialize()
}
