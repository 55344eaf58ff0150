package internal

import (
	"time"
)

// CreateTestSession creates a test session with sample data
func CreateTestSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		Messages: []Message{
			{
				Role:      RoleUser,
				Content:   "What colleges should I look at for nursing?",
				Timestamp: now,
				SessionID: id,
			},
			{
				Role:      RoleAssistant,
				Content:   "Happy to help! Could you tell me a bit about your budget and location?",
				Timestamp: now.Add(time.Second),
				SessionID: id,
			},
		},
	}
}

// CreateTestSessionWithMessages creates a test session with custom messages
func CreateTestSessionWithMessages(id string, messages []Message) *Session {
	now := time.Now()
	for i := range messages {
		messages[i].SessionID = id
		if messages[i].Timestamp.IsZero() {
			messages[i].Timestamp = now.Add(time.Duration(i) * time.Second)
		}
	}
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  messages,
	}
}
