package meeting

import "time"

// MeetingRecord is the calendar-facing shape of a complete session context.
type MeetingRecord struct {
	Subject         string
	Body            string
	Date            string // ISO date, e.g. "2024-06-12"
	Time            string // free-form, e.g. "3pm" or "15:00"
	DurationMinutes int
	Attendees       []string // email addresses
}

// Meeting is a persisted descriptor of a created calendar event, keyed by
// chat session.
type Meeting struct {
	ID        int64
	SessionID string
	EventID   string
	Subject   string
	StartTime string // RFC3339
	EndTime   string // RFC3339
	JoinLink  string
	CreatedAt time.Time
}
