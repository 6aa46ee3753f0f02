package repository

// CreateContactOptions holds parameters for inserting a new Contact.
type CreateContactOptions struct {
	FirstName string
	LastName  string
	Email     string
}

// GetOneContactOptions holds filter parameters for fetching a single
// Contact. All non-zero fields are applied as AND conditions.
type GetOneContactOptions struct {
	ID    int64
	Email string
}

// UpdateContactOptions holds parameters for updating an existing Contact.
type UpdateContactOptions struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}
