package model

import "time"

// Contact is an entry in the organization's contact directory.
type Contact struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

// FullName returns "First Last".
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Display returns the canonical attendee form "First Last (email)".
func (c Contact) Display() string {
	return c.FullName() + " (" + c.Email + ")"
}
