package repository

import (
	"context"

	"scheduling-assistant/internal/model"
)

// Repository is the composed interface for the contact domain data store.
type Repository interface {
	ContactRepository
}

// ContactRepository defines all data access methods for the Contact entity.
type ContactRepository interface {
	CreateContact(ctx context.Context, opt CreateContactOptions) (model.Contact, error)
	// GetOneContact returns a zero-value Contact (ID == 0) when not found —
	// do NOT return an error for not-found.
	GetOneContact(ctx context.Context, opt GetOneContactOptions) (model.Contact, error)
	ListContacts(ctx context.Context) ([]model.Contact, error)
	// FindContactsByName resolves a free-text name: one token matches first
	// or last name as a substring, two or more tokens match the first token
	// against the first name and the last token against the last name,
	// independently, case-insensitively.
	FindContactsByName(ctx context.Context, name string) ([]model.Contact, error)
	UpdateContact(ctx context.Context, opt UpdateContactOptions) (model.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}
