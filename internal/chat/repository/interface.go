package repository

import (
	"context"
	"errors"

	"studybuddy/internal/model"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// Repository is the interface for session and message persistence. Sessions
// are never deleted; terminating one flips its status and keeps the history.
type Repository interface {
	// GetSession returns the session or ErrNotFound.
	GetSession(ctx context.Context, sc model.Scope) (model.Session, error)

	// ListSessions returns all sessions, active and terminated, oldest first.
	ListSessions(ctx context.Context) ([]model.Session, error)

	// CreateSession stores a new session. Creating an existing session is a no-op.
	CreateSession(ctx context.Context, session model.Session) (model.Session, error)

	// UpdateSession applies the non-nil fields of opt to the session.
	UpdateSession(ctx context.Context, sc model.Scope, opt UpdateSessionOptions) error

	// TerminateSession marks the session terminated. Terminating an already
	// terminated session is a no-op.
	TerminateSession(ctx context.Context, sc model.Scope) error

	// AppendMessage appends a message, assigning its sequence number and timestamp.
	AppendMessage(ctx context.Context, sc model.Scope, msg model.Message) (model.Message, error)

	// ListMessages returns all messages in chronological order.
	ListMessages(ctx context.Context, sc model.Scope) ([]model.Message, error)

	// RecentMessages returns up to limit messages, newest first.
	RecentMessages(ctx context.Context, sc model.Scope, limit int) ([]model.Message, error)
}

// UpdateSessionOptions carries a partial session update. Nil fields are left
// untouched.
type UpdateSessionOptions struct {
	Status       *model.SessionStatus
	UserLanguage *string
	UserProfile  map[string]string // full replacement when non-nil
	LastIntent   *string
	LastParams   map[string]string // full replacement when non-nil
}
