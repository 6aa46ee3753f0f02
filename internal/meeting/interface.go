package meeting

import (
	"context"

	"scheduling-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Schedule creates a calendar event from a complete session context and
	// persists the resulting descriptor. Scheduling an already-scheduled
	// session returns the existing join link without creating a duplicate.
	Schedule(ctx context.Context, sessionID string, sc model.SessionContext) (string, error)
	// Cancel deletes the session's calendar event and its stored descriptor.
	Cancel(ctx context.Context, sessionID string) error
	// Get returns the stored meeting descriptor for the session.
	Get(ctx context.Context, sessionID string) (Meeting, error)
}
