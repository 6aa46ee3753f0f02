package repository

import (
	"context"

	"scheduling-assistant/internal/meeting"
)

// Repository is the composed interface for the meeting domain data store.
type Repository interface {
	MeetingRepository
	SessionRepository
}

// MeetingRepository persists created-meeting descriptors keyed by chat session.
type MeetingRepository interface {
	CreateMeeting(ctx context.Context, opt CreateMeetingOptions) (meeting.Meeting, error)
	// GetMeetingBySession returns a zero-value Meeting (EventID == "") when
	// the session has no scheduled meeting — no error for not-found.
	GetMeetingBySession(ctx context.Context, sessionID string) (meeting.Meeting, error)
	DeleteMeeting(ctx context.Context, sessionID string) error
}

// SessionRepository tracks the calendar connection flag per chat session.
type SessionRepository interface {
	SetConnected(ctx context.Context, sessionID string, connected bool) error
	IsConnected(ctx context.Context, sessionID string) (bool, error)
}
