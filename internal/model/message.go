package model

import "time"

// Role is the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation. Content is what the user saw (their
// own language); WorkingContent is the same text in the working language used
// internally for classification and retrieval.
type Message struct {
	Role           Role
	Content        string
	WorkingContent string
	Language       string // ISO 639-1 code of Content
	Intent         string // intent assigned when the turn was handled
	Seq            int    // position within the session, starting at 1
	CreatedAt      time.Time
}
