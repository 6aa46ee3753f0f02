package contact

import (
	"context"

	"scheduling-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Contact CRUD
	Create(ctx context.Context, input CreateContactInput) (CreateContactOutput, error)
	List(ctx context.Context) (ListContactsOutput, error)
	Detail(ctx context.Context, id int64) (DetailContactOutput, error)
	Update(ctx context.Context, input UpdateContactInput) (UpdateContactOutput, error)
	Delete(ctx context.Context, id int64) error

	// Directory lookups consumed by the conversation engine.
	FindByName(ctx context.Context, name string) ([]model.Contact, error)
	FindByEmail(ctx context.Context, email string) (model.Contact, error)
}
