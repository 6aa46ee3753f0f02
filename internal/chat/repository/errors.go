package repository

import "errors"

var ErrContextNotFound = errors.New("session context not found")
