package model

import (
	"time"

	"github.com/google/uuid"
)

// Chat is the seed a Conversation starts from
type Chat struct {
	ID       string
	Title    string
	Messages []Message
}

// MockChat returns the static in-memory seed shown on startup.
// Seeded message ids follow the same position rule as appended ones.
func MockChat() Chat {
	now := time.Now()
	seed := []struct {
		role    Role
		content string
	}{
		{RoleUser, "Hi! What can you do?"},
		{RoleAssistant, "I'm a mock assistant. Anything you send comes straight back to you, prefixed with *You said:*."},
		{RoleUser, "So there is no model behind this?"},
		{RoleAssistant, "Correct, no network calls are made. Scroll up to read older messages, and press **Alt+Shift+G** to jump back to the latest one."},
	}

	chat := Chat{
		ID:    uuid.NewString(),
		Title: "Mock chat",
	}
	for _, s := range seed {
		chat.Messages = append(chat.Messages, newMessage(len(chat.Messages), s.role, s.content, now))
	}
	return chat
}
