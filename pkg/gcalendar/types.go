package gcalendar

import "time"

const (
	// DefaultCalendarID addresses the calendar of the authenticated account.
	DefaultCalendarID = "primary"
	// DefaultTokenFile is where the installed-app OAuth token is stored.
	DefaultTokenFile = "token.json"
)

// AllDayEventRequest is the input for creating or replacing an all-day event
// under a caller-chosen event id.
type AllDayEventRequest struct {
	CalendarID  string
	EventID     string // base32hex, 5-1024 chars
	Summary     string
	Description string
	Date        time.Time // only the calendar date is used
	Timezone    string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
