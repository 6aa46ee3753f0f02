package repository

import (
	"context"

	"scheduling-assistant/internal/model"
)

// ContextRepository stores per-session conversation contexts.
type ContextRepository interface {
	// Get returns the stored context or ErrContextNotFound.
	Get(ctx context.Context, sessionID string) (model.SessionContext, error)
	// Save replaces the stored context for the session.
	Save(ctx context.Context, sessionID string, sc model.SessionContext) error
	// Delete removes the session's context. Deleting an absent session is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
