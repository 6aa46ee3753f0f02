package http

import (
	"scheduling-assistant/internal/chat"
	pkgLog "scheduling-assistant/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates the chat HTTP handler.
func New(l pkgLog.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
