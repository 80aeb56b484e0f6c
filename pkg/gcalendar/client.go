package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const dateLayout = "2006-01-02"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials.
// Service Account keys are used directly; installed-app (OAuth Desktop)
// credentials additionally need a token previously saved at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, oauthErr := OAuthConfigFromJSON(credentialsJSON)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, tokErr := LoadToken(tokenPath)
	if tokErr != nil {
		return nil, tokErr
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
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

// UpsertAllDayEvent replaces the event with req.EventID, inserting it when
// the calendar does not know it yet.
func (c *Client) UpsertAllDayEvent(ctx context.Context, req AllDayEventRequest) (*Event, error) {
	if req.EventID == "" {
		return nil, ErrEmptyEventID
	}

	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)
	event := &calendar.Event{
		Id:          req.EventID,
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			Date:     day.Format(dateLayout),
			TimeZone: req.Timezone,
		},
		// End date is exclusive for all-day events.
		End: &calendar.EventDateTime{
			Date:     day.AddDate(0, 0, 1).Format(dateLayout),
			TimeZone: req.Timezone,
		},
	}

	calID := calendarID(req.CalendarID)
	saved, err := c.service.Events.Update(calID, req.EventID, event).Context(ctx).Do()
	if isNotFound(err) {
		saved, err = c.service.Events.Insert(calID, event).Context(ctx).Do()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert calendar event %s: %w", req.EventID, err)
	}

	return &Event{
		ID:          saved.Id,
		Summary:     saved.Summary,
		Description: saved.Description,
		HtmlLink:    saved.HtmlLink,
		StartTime:   day,
		EndTime:     day.AddDate(0, 0, 1),
		AllDay:      true,
	}, nil
}

// DeleteEvent removes an event. Events that are already gone are not an error.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if eventID == "" {
		return ErrEmptyEventID
	}
	err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do()
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	return nil
}

// ListEvents lists single events between TimeMin and TimeMax ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		e := Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
		}
		e.StartTime, e.AllDay = parseEventTime(item.Start)
		e.EndTime, _ = parseEventTime(item.End)
		events = append(events, e)
	}
	return events, nil
}

// OAuthConfigFromJSON parses installed-app (OAuth Desktop) credentials.
func OAuthConfigFromJSON(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth credentials: %w", err)
	}
	return cfg, nil
}

// LoadToken reads an OAuth token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	if path == "" {
		path = DefaultTokenFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, path)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok to path, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	if path == "" {
		path = DefaultTokenFile
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}

func isNotFound(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone
}

func parseEventTime(dt *calendar.EventDateTime) (time.Time, bool) {
	if dt == nil {
		return time.Time{}, false
	}
	if dt.DateTime != "" {
		t, _ := time.Parse(time.RFC3339, dt.DateTime)
		return t, false
	}
	t, _ := time.Parse(dateLayout, dt.Date)
	return t, true
}
