package model

import "time"

// SessionStatus is the lifecycle state of a session. Terminated sessions keep
// their history and can be reactivated.
type SessionStatus string

const (
	SessionStatusActive     SessionStatus = "active"
	SessionStatusTerminated SessionStatus = "terminated"
)

// Session represents one user conversation.
type Session struct {
	UserID       string            // Stable user identifier
	SessionID    string            // Conversation identifier
	Status       SessionStatus     // Lifecycle state
	UserLanguage string            // ISO 639-1 code of the user's language
	UserProfile  map[string]string // Known profile facts (name, nationality, ...)
	LastIntent   string            // Intent of the previous assistant turn
	LastParams   map[string]string // Parameters of the previous turn (period, page, ...)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Scope identifies which session an operation acts on.
type Scope struct {
	UserID    string
	SessionID string
}
