package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	DefaultCalendarID = "primary"
	DefaultMaxResults = 250
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromTokenSource creates a Calendar client that authenticates with ts.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// FindByTag looks up an event by private extended property.
func (c *Client) FindByTag(ctx context.Context, calendarID, key, value string) (*Event, error) {
	res, err := c.service.Events.List(orPrimary(calendarID)).
		PrivateExtendedProperty(key + "=" + value).
		MaxResults(2).
		SingleEvents(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to find event by %s: %w", key, err)
	}
	if len(res.Items) == 0 {
		return nil, nil
	}
	ev := toEvent(res.Items[0])
	return &ev, nil
}

// InsertEvent creates a new Google Calendar event.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, in EventInput) (*Event, error) {
	created, err := c.service.Events.Insert(orPrimary(calendarID), toCalendarEvent(in)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	ev := toEvent(created)
	return &ev, nil
}

// UpdateEvent replaces an existing event with in.
func (c *Client) UpdateEvent(ctx context.Context, calendarID, eventID string, in EventInput) (*Event, error) {
	updated, err := c.service.Events.Update(orPrimary(calendarID), eventID, toCalendarEvent(in)).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}
	ev := toEvent(updated)
	return &ev, nil
}

// GetEvent fetches a single event.
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*Event, error) {
	got, err := c.service.Events.Get(orPrimary(calendarID), eventID).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	ev := toEvent(got)
	return &ev, nil
}

// RescheduleEvent fetches the event and writes it back with a new start and end.
// Every other field is preserved.
func (c *Client) RescheduleEvent(ctx context.Context, calendarID, eventID string, req RescheduleRequest) (*Event, error) {
	calendarID = orPrimary(calendarID)

	existing, err := c.service.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}

	existing.Start = eventDateTime(req.StartTime, req.Timezone)
	existing.End = eventDateTime(req.EndTime, req.Timezone)

	updated, err := c.service.Events.Update(calendarID, eventID, existing).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}
	ev := toEvent(updated)
	return &ev, nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.service.Events.Delete(orPrimary(calendarID), eventID).Context(ctx).Do(); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
		}
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// ListEvents returns single (expanded) events in the window ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	call := c.service.Events.List(orPrimary(req.CalendarID)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults).
		Context(ctx)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.Query != "" {
		call = call.Q(req.Query)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, toEvent(item))
	}
	return events, nil
}

// PrimaryCalendarID resolves calendarList/primary.
func (c *Client) PrimaryCalendarID(ctx context.Context) (string, error) {
	entry, err := c.service.CalendarList.Get(DefaultCalendarID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get primary calendar: %w", err)
	}
	return entry.Id, nil
}

func orPrimary(calendarID string) string {
	if calendarID == "" {
		return DefaultCalendarID
	}
	return calendarID
}

func eventDateTime(t time.Time, tz string) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: tz,
	}
}

func toCalendarEvent(in EventInput) *calendar.Event {
	ev := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Location:    in.Location,
		Start:       eventDateTime(in.StartTime, in.Timezone),
		End:         eventDateTime(in.EndTime, in.Timezone),
		ColorId:     in.ColorID,
		Recurrence:  in.Recurrence,
	}
	if len(in.PrivateProperties) > 0 {
		ev.ExtendedProperties = &calendar.EventExtendedProperties{Private: in.PrivateProperties}
	}
	return ev
}

func toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		HtmlLink:    item.HtmlLink,
		Start:       wireTime(item.Start),
		End:         wireTime(item.End),
		Recurrence:  item.Recurrence,
	}
	if item.ExtendedProperties != nil {
		ev.PrivateProperties = item.ExtendedProperties.Private
	}
	return ev
}

func wireTime(dt *calendar.EventDateTime) string {
	if dt == nil {
		return ""
	}
	if dt.DateTime != "" {
		return dt.DateTime
	}
	return dt.Date
}

var _ API = (*Client)(nil)
