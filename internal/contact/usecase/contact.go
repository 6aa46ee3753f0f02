package usecase

import (
	"context"
	"strings"

	"scheduling-assistant/internal/contact"
	repo "scheduling-assistant/internal/contact/repository"
	"scheduling-assistant/internal/model"
)

// Create adds a new Contact after checking for email uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input contact.CreateContactInput) (contact.CreateContactOutput, error) {
	existing, err := uc.repo.GetOneContact(ctx, repo.GetOneContactOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneContact: %v", err)
		return contact.CreateContactOutput{}, err
	}
	if existing.ID != 0 {
		return contact.CreateContactOutput{}, contact.ErrDuplicateEmail
	}

	created, err := uc.repo.CreateContact(ctx, repo.CreateContactOptions{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateContact: %v", err)
		return contact.CreateContactOutput{}, err
	}

	return contact.CreateContactOutput{Contact: created}, nil
}

// List returns the whole directory.
func (uc *implUseCase) List(ctx context.Context) (contact.ListContactsOutput, error) {
	contacts, err := uc.repo.ListContacts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListContacts: %v", err)
		return contact.ListContactsOutput{}, err
	}
	return contact.ListContactsOutput{Contacts: contacts, Total: len(contacts)}, nil
}

// Detail retrieves a single Contact by ID. Returns ErrContactNotFound when
// not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (contact.DetailContactOutput, error) {
	c, err := uc.repo.GetOneContact(ctx, repo.GetOneContactOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneContact: %v", err)
		return contact.DetailContactOutput{}, err
	}
	if c.ID == 0 {
		return contact.DetailContactOutput{}, contact.ErrContactNotFound
	}
	return contact.DetailContactOutput{Contact: c}, nil
}

// Update modifies an existing Contact. Returns ErrContactNotFound when not
// found and ErrDuplicateEmail when the new email belongs to someone else.
func (uc *implUseCase) Update(ctx context.Context, input contact.UpdateContactInput) (contact.UpdateContactOutput, error) {
	existing, err := uc.repo.GetOneContact(ctx, repo.GetOneContactOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneContact: %v", err)
		return contact.UpdateContactOutput{}, err
	}
	if existing.ID == 0 {
		return contact.UpdateContactOutput{}, contact.ErrContactNotFound
	}

	email := uc.coalesce(input.Email, existing.Email)
	if !strings.EqualFold(email, existing.Email) {
		owner, err := uc.repo.GetOneContact(ctx, repo.GetOneContactOptions{Email: email})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneContact: %v", err)
			return contact.UpdateContactOutput{}, err
		}
		if owner.ID != 0 && owner.ID != input.ID {
			return contact.UpdateContactOutput{}, contact.ErrDuplicateEmail
		}
	}

	updated, err := uc.repo.UpdateContact(ctx, repo.UpdateContactOptions{
		ID:        input.ID,
		FirstName: uc.coalesce(input.FirstName, existing.FirstName),
		LastName:  uc.coalesce(input.LastName, existing.LastName),
		Email:     email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateContact: %v", err)
		return contact.UpdateContactOutput{}, err
	}
	return contact.UpdateContactOutput{Contact: updated}, nil
}

// Delete removes a Contact by ID. Returns ErrContactNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneContact(ctx, repo.GetOneContactOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneContact: %v", err)
		return err
	}
	if existing.ID == 0 {
		return contact.ErrContactNotFound
	}
	if err := uc.repo.DeleteContact(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteContact: %v", err)
		return err
	}
	return nil
}

// FindByName resolves a free-text name against the directory.
func (uc *implUseCase) FindByName(ctx context.Context, name string) ([]model.Contact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	contacts, err := uc.repo.FindContactsByName(ctx, name)
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindByName FindContactsByName: %v", err)
		return nil, err
	}
	return contacts, nil
}

// FindByEmail returns the zero-value Contact when no contact owns the email.
func (uc *implUseCase) FindByEmail(ctx context.Context, email string) (model.Contact, error) {
	c, err := uc.repo.GetOneContact(ctx, repo.GetOneContactOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindByEmail GetOneContact: %v", err)
		return model.Contact{}, err
	}
	return c, nil
}

// coalesce returns the first non-empty string — used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
