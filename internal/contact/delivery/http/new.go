package http

import (
	"scheduling-assistant/internal/contact"
	"scheduling-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc contact.UseCase
}

// New creates a new HTTP handler for the contact domain.
func New(l log.Logger, uc contact.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
