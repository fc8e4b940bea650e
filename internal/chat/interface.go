package chat

import (
	"context"

	"studybuddy/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// StartSession creates the session if it does not exist and returns it.
	StartSession(ctx context.Context, sc model.Scope) (model.Session, error)

	// GetSession returns an existing session, active or terminated.
	GetSession(ctx context.Context, sc model.Scope) (model.Session, error)

	// ListSessions returns all sessions, active and terminated.
	ListSessions(ctx context.Context) ([]model.Session, error)

	// TerminateSession marks the session terminated. Its history stays
	// readable; only message processing is refused.
	TerminateSession(ctx context.Context, sc model.Scope) error

	// LoadSession reactivates a terminated session. Loading an active
	// session is a no-op.
	LoadSession(ctx context.Context, sc model.Scope) (model.Session, error)

	// ListMessages returns the full message history in chronological order.
	ListMessages(ctx context.Context, sc model.Scope) ([]model.Message, error)

	// ProcessMessage runs one user message through the dialogue state machine
	// and returns the reply in the user's language.
	ProcessMessage(ctx context.Context, sc model.Scope, input ProcessMessageInput) (ProcessMessageOutput, error)
}
