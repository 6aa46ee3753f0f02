package contact

import "scheduling-assistant/internal/model"

// --- UseCase Inputs ---

type CreateContactInput struct {
	FirstName string
	LastName  string
	Email     string
}

type UpdateContactInput struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// --- UseCase Outputs ---

type CreateContactOutput struct {
	Contact model.Contact
}

type ListContactsOutput struct {
	Contacts []model.Contact
	Total    int
}

type DetailContactOutput struct {
	Contact model.Contact
}

type UpdateContactOutput struct {
	Contact model.Contact
}
