package testutil

import (
	"time"

	"mockchat/model"
)

// TestMessages returns a sample conversation for testing
func TestMessages() []model.Message {
	return []model.Message{
		{ID: "0", Role: model.RoleUser, Content: "Hello, how are you?", Timestamp: time.Now()},
		{ID: "1", Role: model.RoleAssistant, Content: "I'm doing well, thank you!", Timestamp: time.Now()},
		{ID: "2", Role: model.RoleUser, Content: "Can you help me with a task?", Timestamp: time.Now()},
	}
}

// SingleUserMessage returns a single user message for simple tests
func SingleUserMessage(content string) []model.Message {
	return []model.Message{
		{ID: "0", Role: model.RoleUser, Content: content, Timestamp: time.Now()},
	}
}

// EmptyChat returns a seed without messages
func EmptyChat() model.Chat {
	return model.Chat{ID: "test-chat", Title: "Test"}
}
