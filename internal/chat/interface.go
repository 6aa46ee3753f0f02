package chat

import (
	"context"

	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/extractor"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process runs one conversation turn and returns the bot utterance.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	// Reset discards the session context wholesale.
	Reset(ctx context.Context, sessionID string) error
	// IsComplete reports whether all required slots are filled.
	IsComplete(ctx context.Context, sessionID string) bool
	// GetContext returns the current session context (empty if none exists).
	GetContext(ctx context.Context, sessionID string) (model.SessionContext, error)
	// Extract exposes raw entity extraction without touching any session.
	Extract(text string) extractor.Entities
}

// ContactResolver is the contact-directory collaborator consumed by the
// engine for attendee resolution.
type ContactResolver interface {
	FindByName(ctx context.Context, name string) ([]model.Contact, error)
	FindByEmail(ctx context.Context, email string) (model.Contact, error)
}

// MeetingScheduler pushes a completed context to the calendar collaborator.
// Returns the join link of the created meeting when available.
type MeetingScheduler interface {
	Schedule(ctx context.Context, sessionID string, sc model.SessionContext) (string, error)
}
