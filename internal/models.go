package internal

import (
	"time"
)

// Message represents one turn in an advising conversation
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user", "assistant", "system"
	Content   string    `json:"content"`
	Citations []string  `json:"citations,omitempty"` // citation URLs from the LLM
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"sessionId"`
}

// Session represents one advising conversation
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Messages  []Message `json:"messages"`
}

// SessionInfo is a session listing entry without message bodies
type SessionInfo struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	MessageCount int       `json:"messageCount"`
}

// Role constants for Message.Role
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// RoleLabel maps a message role to its display name. User messages belong
// to the student; everything else speaks for the advisor.
func RoleLabel(role string) string {
	if role == RoleUser {
		return "Student"
	}
	return "Advisor"
}
