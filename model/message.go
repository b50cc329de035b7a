package model

import "time"

// Role identifies who authored a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a chat message in the conversation.
// ID, Role, Content and Timestamp never change after creation.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Rendered  string // Cached rendered markdown, empty until the UI renders it
	Timestamp time.Time
}

// Display returns the rendered markdown if available, the raw content otherwise
func (m Message) Display() string {
	if m.Rendered != "" {
		return m.Rendered
	}
	return m.Content
}
