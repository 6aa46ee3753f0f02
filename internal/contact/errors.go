package contact

import "errors"

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrDuplicateEmail  = errors.New("contact email already exists")
	ErrInvalidPayload  = errors.New("invalid payload")
)
