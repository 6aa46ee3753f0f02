package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	repo "scheduling-assistant/internal/contact/repository"
	"scheduling-assistant/internal/model"
)

const contactColumns = "id, first_name, last_name, email, created_at"

// CreateContact inserts a new Contact row and returns the created entity.
func (r *implRepository) CreateContact(ctx context.Context, opt repo.CreateContactOptions) (model.Contact, error) {
	const query = `
		INSERT INTO contacts (first_name, last_name, email)
		VALUES (?, ?, ?)
		RETURNING ` + contactColumns

	var c model.Contact
	err := r.db.QueryRowContext(ctx, query, opt.FirstName, opt.LastName, opt.Email).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateContact"), err)
		return model.Contact{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetOneContact retrieves a single Contact by the provided filters (AND
// condition). Returns zero-value Contact (ID == 0) when not found.
func (r *implRepository) GetOneContact(ctx context.Context, opt repo.GetOneContactOptions) (model.Contact, error) {
	var (
		conds []string
		args  []any
	)
	if opt.ID != 0 {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Email != "" {
		conds = append(conds, "LOWER(email) = LOWER(?)")
		args = append(args, opt.Email)
	}
	if len(conds) == 0 {
		return model.Contact{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM contacts WHERE %s LIMIT 1",
		contactColumns, strings.Join(conds, " AND "))

	var c model.Contact
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Contact{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneContact"), err)
		return model.Contact{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListContacts returns the whole directory ordered by last then first name.
func (r *implRepository) ListContacts(ctx context.Context) ([]model.Contact, error) {
	query := fmt.Sprintf("SELECT %s FROM contacts ORDER BY last_name, first_name", contactColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListContacts"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	return r.scanContacts(ctx, "ListContacts", rows)
}

// FindContactsByName resolves a free-text name. A single token matches as a
// substring against first or last name; with two or more tokens the first
// token matches the first name and the last token the last name,
// independently. All matching is case-insensitive.
func (r *implRepository) FindContactsByName(ctx context.Context, name string) ([]model.Contact, error) {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	if len(tokens) == 0 {
		return nil, nil
	}

	var (
		query string
		args  []any
	)
	if len(tokens) == 1 {
		query = fmt.Sprintf(
			"SELECT %s FROM contacts WHERE LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? ORDER BY id",
			contactColumns)
		pattern := "%" + tokens[0] + "%"
		args = []any{pattern, pattern}
	} else {
		query = fmt.Sprintf(
			"SELECT %s FROM contacts WHERE LOWER(first_name) LIKE ? AND LOWER(last_name) LIKE ? ORDER BY id",
			contactColumns)
		args = []any{"%" + tokens[0] + "%", "%" + tokens[len(tokens)-1] + "%"}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindContactsByName"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	return r.scanContacts(ctx, "FindContactsByName", rows)
}

// UpdateContact updates a Contact by ID and returns the updated entity.
func (r *implRepository) UpdateContact(ctx context.Context, opt repo.UpdateContactOptions) (model.Contact, error) {
	const query = `
		UPDATE contacts
		SET first_name = ?, last_name = ?, email = ?
		WHERE id = ?
		RETURNING ` + contactColumns

	var c model.Contact
	err := r.db.QueryRowContext(ctx, query, opt.FirstName, opt.LastName, opt.Email, opt.ID).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Contact{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateContact"), err)
		return model.Contact{}, repo.ErrFailedToUpdate
	}
	return c, nil
}

// DeleteContact removes a Contact by ID.
func (r *implRepository) DeleteContact(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteContact"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) scanContacts(ctx context.Context, method string, rows *sql.Rows) ([]model.Contact, error) {
	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return contacts, nil
}
