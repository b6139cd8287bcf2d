package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/datemath"
	"course-outline-planner/pkg/gcalendar"
	"course-outline-planner/pkg/log"
)

// fakeCalendar is an in-memory gcalendar.API indexed by the app_event_id tag.
type fakeCalendar struct {
	events    map[string]gcalendar.EventInput
	nextID    int
	findErr   error
	insertErr map[string]error // by tag
	listReq   gcalendar.ListEventsRequest
	listed    []gcalendar.Event
	inserts   int
	updates   int
	lastInput gcalendar.EventInput
}

func newFakeCalendar() *fakeCalendar {
	return &fakeCalendar{events: map[string]gcalendar.EventInput{}, insertErr: map[string]error{}}
}

func (f *fakeCalendar) FindByTag(ctx context.Context, calendarID, key, value string) (*gcalendar.Event, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for id, in := range f.events {
		if in.PrivateProperties[key] == value {
			return &gcalendar.Event{ID: id, Summary: in.Summary}, nil
		}
	}
	return nil, nil
}

func (f *fakeCalendar) InsertEvent(ctx context.Context, calendarID string, in gcalendar.EventInput) (*gcalendar.Event, error) {
	if err := f.insertErr[in.PrivateProperties["app_event_id"]]; err != nil {
		return nil, err
	}
	f.nextID++
	f.inserts++
	f.lastInput = in
	id := fmt.Sprintf("g%d", f.nextID)
	f.events[id] = in
	return &gcalendar.Event{
		ID:      id,
		Summary: in.Summary,
		Start:   in.StartTime.Format(time.RFC3339),
		End:     in.EndTime.Format(time.RFC3339),
	}, nil
}

func (f *fakeCalendar) UpdateEvent(ctx context.Context, calendarID, eventID string, in gcalendar.EventInput) (*gcalendar.Event, error) {
	if _, ok := f.events[eventID]; !ok {
		return nil, gcalendar.ErrEventNotFound
	}
	f.updates++
	f.events[eventID] = in
	return &gcalendar.Event{ID: eventID, Summary: in.Summary}, nil
}

func (f *fakeCalendar) GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error) {
	in, ok := f.events[eventID]
	if !ok {
		return nil, gcalendar.ErrEventNotFound
	}
	return &gcalendar.Event{ID: eventID, Summary: in.Summary}, nil
}

func (f *fakeCalendar) RescheduleEvent(ctx context.Context, calendarID, eventID string, req gcalendar.RescheduleRequest) (*gcalendar.Event, error) {
	in, ok := f.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", gcalendar.ErrEventNotFound, eventID)
	}
	in.StartTime, in.EndTime, in.Timezone = req.StartTime, req.EndTime, req.Timezone
	f.events[eventID] = in
	return &gcalendar.Event{
		ID:    eventID,
		Start: req.StartTime.Format(time.RFC3339),
		End:   req.EndTime.Format(time.RFC3339),
	}, nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if _, ok := f.events[eventID]; !ok {
		return fmt.Errorf("%w: %s", gcalendar.ErrEventNotFound, eventID)
	}
	delete(f.events, eventID)
	return nil
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.listReq = req
	return f.listed, nil
}

func (f *fakeCalendar) PrimaryCalendarID(ctx context.Context) (string, error) {
	return "me@example.com", nil
}

type fakeProvider struct {
	api gcalendar.API
	err error
}

func (p *fakeProvider) Calendar(ctx context.Context, sc model.Scope) (gcalendar.API, string, error) {
	if p.err != nil {
		return nil, "", p.err
	}
	return p.api, "primary", nil
}

var errNotConnected = errors.New("not connected")

func newTestUseCase(t *testing.T, provider *fakeProvider) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("America/Toronto")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(log.NewNop(), provider, parser, 0, nil)
	uc.now = func() time.Time { return time.Date(2025, 9, 15, 12, 0, 0, 0, parser.Location()) }
	return uc
}

func toronto(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return loc
}

func ptr(t time.Time) *time.Time { return &t }

var sc = model.Scope{SessionID: "default"}
