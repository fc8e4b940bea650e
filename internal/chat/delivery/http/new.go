package http

import (
	"studybuddy/internal/chat"
	pkgLog "studybuddy/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
