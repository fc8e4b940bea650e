package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string // defaults to "primary"
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
