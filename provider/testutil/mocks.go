package testutil

import (
	"context"

	"mockchat/model"
)

// MockProvider implements model.Provider for testing
type MockProvider struct {
	ChatFunc func(ctx context.Context, messages []model.Message, callback model.StreamCallback) error
	PingFunc func(ctx context.Context) error

	// Calls records the history passed to each Chat call
	Calls [][]model.Message

	currentModel string
}

// NewMockProvider creates a mock provider with default implementations
func NewMockProvider(modelName string) *MockProvider {
	mock := &MockProvider{currentModel: modelName}
	mock.ChatFunc = mock.defaultChat
	mock.PingFunc = func(ctx context.Context) error { return nil }
	return mock
}

func (m *MockProvider) defaultChat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	if len(messages) > 0 {
		return callback("Mock response")
	}
	return nil
}

func (m *MockProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	m.Calls = append(m.Calls, messages)
	return m.ChatFunc(ctx, messages, callback)
}

func (m *MockProvider) GetModel() string       { return m.currentModel }
func (m *MockProvider) GetDisplayName() string { return m.currentModel }

func (m *MockProvider) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}
