package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"course-outline-planner/internal/calsync"
	"course-outline-planner/pkg/gcalendar"
)

func TestListEvents(t *testing.T) {
	loc := toronto(t)
	cal := newFakeCalendar()
	cal.listed = []gcalendar.Event{
		{ID: "e1", Summary: "CS 350 Lecture", Start: "2025-09-16T15:30:00-04:00", End: "2025-09-16T16:50:00-04:00", Location: "MC 2065"},
	}
	uc := newTestUseCase(t, &fakeProvider{api: cal})

	out := uc.ListEvents(context.Background(), sc, calsync.ListEventsInput{
		DateFrom:   "2025-09-16",
		DateTo:     "2025-09-20",
		SearchText: " CS 350 ",
	})
	if !out.OK {
		t.Fatalf("expected ok, got error %q", out.Error)
	}
	if len(out.Events) != 1 || out.Events[0].ID != "e1" || out.Events[0].Location != "MC 2065" {
		t.Errorf("unexpected events: %+v", out.Events)
	}

	req := cal.listReq
	if !req.TimeMin.Equal(time.Date(2025, 9, 16, 0, 0, 0, 0, loc)) {
		t.Errorf("TimeMin = %v", req.TimeMin)
	}
	if !req.TimeMax.Equal(time.Date(2025, 9, 20, 23, 59, 59, 0, loc)) {
		t.Errorf("TimeMax = %v, want end of day", req.TimeMax)
	}
	if req.Query != "CS 350" || req.MaxResults != DefaultMaxResults || req.CalendarID != "primary" {
		t.Errorf("unexpected request %+v", req)
	}
}

func TestListEvents_RelativeAndOffsetless(t *testing.T) {
	loc := toronto(t)
	cal := newFakeCalendar()
	uc := newTestUseCase(t, &fakeProvider{api: cal})

	out := uc.ListEvents(context.Background(), sc, calsync.ListEventsInput{
		DateFrom:   "2025-09-16T08:00:00",
		DateTo:     "tomorrow",
		MaxResults: 10,
	})
	if !out.OK {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if !cal.listReq.TimeMin.Equal(time.Date(2025, 9, 16, 8, 0, 0, 0, loc)) {
		t.Errorf("offsetless timestamp should be read in Toronto, got %v", cal.listReq.TimeMin)
	}
	if !cal.listReq.TimeMax.Equal(time.Date(2025, 9, 16, 23, 59, 59, 0, loc)) {
		t.Errorf("tomorrow should cover the whole day, got %v", cal.listReq.TimeMax)
	}
	if cal.listReq.MaxResults != 10 {
		t.Errorf("MaxResults = %d", cal.listReq.MaxResults)
	}
}

func TestListEvents_Failures(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		input    calsync.ListEventsInput
	}{
		{name: "missing dates", provider: &fakeProvider{api: newFakeCalendar()}, input: calsync.ListEventsInput{DateFrom: "2025-09-16"}},
		{name: "garbage date", provider: &fakeProvider{api: newFakeCalendar()}, input: calsync.ListEventsInput{DateFrom: "someday", DateTo: "2025-09-20"}},
		{name: "not connected", provider: &fakeProvider{err: errNotConnected}, input: calsync.ListEventsInput{DateFrom: "today", DateTo: "tomorrow"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := newTestUseCase(t, tt.provider).ListEvents(context.Background(), sc, tt.input)
			if out.OK || out.Error == "" {
				t.Errorf("expected ok=false with error, got %+v", out)
			}
		})
	}
}

func TestDeleteEvent(t *testing.T) {
	cal := newFakeCalendar()
	cal.events["g1"] = gcalendar.EventInput{Summary: "Lecture"}
	uc := newTestUseCase(t, &fakeProvider{api: cal})

	out := uc.DeleteEvent(context.Background(), sc, calsync.DeleteEventInput{EventID: "g1"})
	if !out.OK || out.DeletedEventID != "g1" {
		t.Errorf("unexpected output %+v", out)
	}

	out = uc.DeleteEvent(context.Background(), sc, calsync.DeleteEventInput{EventID: "nope"})
	if out.OK || out.EventID != "nope" || !strings.Contains(out.Error, "not found") {
		t.Errorf("expected not found failure, got %+v", out)
	}
}

func TestRescheduleEvent(t *testing.T) {
	cal := newFakeCalendar()
	cal.events["g1"] = gcalendar.EventInput{Summary: "Office hours"}
	uc := newTestUseCase(t, &fakeProvider{api: cal})

	out := uc.RescheduleEvent(context.Background(), sc, calsync.RescheduleEventInput{
		EventID:     "g1",
		NewStartISO: "2025-09-18T14:00:00",
		NewEndISO:   "2025-09-18T15:00:00-04:00",
	})
	if !out.OK {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if out.UpdatedEventID != "g1" || out.NewStart != "2025-09-18T14:00:00-04:00" || out.NewEnd != "2025-09-18T15:00:00-04:00" {
		t.Errorf("unexpected output %+v", out)
	}
	if cal.events["g1"].Timezone != "America/Toronto" {
		t.Errorf("timezone not applied: %+v", cal.events["g1"])
	}
}

func TestRescheduleEvent_Failures(t *testing.T) {
	cal := newFakeCalendar()
	uc := newTestUseCase(t, &fakeProvider{api: cal})

	out := uc.RescheduleEvent(context.Background(), sc, calsync.RescheduleEventInput{
		EventID: "g1", NewStartISO: "2025-09-18T15:00:00", NewEndISO: "2025-09-18T14:00:00",
	})
	if out.OK || !strings.Contains(out.Error, calsync.ErrInvalidTimeRange.Error()) {
		t.Errorf("expected invalid range, got %+v", out)
	}

	out = uc.RescheduleEvent(context.Background(), sc, calsync.RescheduleEventInput{
		EventID: "missing", NewStartISO: "2025-09-18T14:00:00", NewEndISO: "2025-09-18T15:00:00",
	})
	if out.OK || out.EventID != "missing" {
		t.Errorf("expected remote failure, got %+v", out)
	}
}

func TestCreateEvent(t *testing.T) {
	cal := newFakeCalendar()
	uc := newTestUseCase(t, &fakeProvider{api: cal})

	out := uc.CreateEvent(context.Background(), sc, calsync.CreateEventInput{
		Title:          "Study session",
		StartISO:       "2025-09-19T10:00:00",
		EndISO:         "2025-09-19T12:00:00",
		Location:       "DC Library",
		RecurrenceRule: "freq=weekly;count=4",
	})
	if !out.OK {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if out.CreatedEventID == "" || out.Summary != "Study session" || out.Start != "2025-09-19T10:00:00-04:00" {
		t.Errorf("unexpected output %+v", out)
	}

	in := cal.lastInput
	if len(in.Recurrence) != 1 || in.Recurrence[0] != "RRULE:FREQ=WEEKLY;COUNT=4" {
		t.Errorf("Recurrence = %v", in.Recurrence)
	}
	if in.Location != "DC Library" || in.Timezone != "America/Toronto" {
		t.Errorf("unexpected input %+v", in)
	}
}

func TestCreateEvent_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input calsync.CreateEventInput
		want  error
	}{
		{name: "missing title", input: calsync.CreateEventInput{StartISO: "2025-09-19T10:00:00", EndISO: "2025-09-19T11:00:00"}, want: calsync.ErrMissingArgument},
		{name: "bad rule", input: calsync.CreateEventInput{Title: "x", StartISO: "2025-09-19T10:00:00", EndISO: "2025-09-19T11:00:00", RecurrenceRule: "EVERY TUESDAY"}, want: calsync.ErrInvalidRecurrence},
		{name: "reversed range", input: calsync.CreateEventInput{Title: "x", StartISO: "2025-09-19T10:00:00", EndISO: "2025-09-19T09:00:00"}, want: calsync.ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := newFakeCalendar()
			out := newTestUseCase(t, &fakeProvider{api: cal}).CreateEvent(context.Background(), sc, tt.input)
			if out.OK || !strings.Contains(out.Error, tt.want.Error()) {
				t.Errorf("expected %v, got %+v", tt.want, out)
			}
			if cal.inserts != 0 {
				t.Error("nothing should be inserted")
			}
		})
	}
}

func TestNormalizeRRule(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "RRULE:FREQ=WEEKLY;BYDAY=MO,WE", want: "RRULE:FREQ=WEEKLY;BYDAY=MO,WE"},
		{in: "FREQ=DAILY;INTERVAL=2;COUNT=5", want: "RRULE:FREQ=DAILY;INTERVAL=2;COUNT=5"},
		{in: "BYDAY=MO", wantErr: true},
		{in: "nonsense", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeRRule(tt.in)
		if tt.wantErr {
			if !errors.Is(err, calsync.ErrInvalidRecurrence) {
				t.Errorf("normalizeRRule(%q) expected ErrInvalidRecurrence, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("normalizeRRule(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
