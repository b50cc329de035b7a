package model

import "context"

// Provider produces assistant replies. The interface lives in the model
// package so provider implementations can import model without a cycle.
type Provider interface {
	// Chat sends the conversation so far and delivers the reply via callback.
	// Implementations may call back once or once per streamed chunk.
	Chat(ctx context.Context, messages []Message, callback StreamCallback) error

	// GetModel returns the backend model name.
	GetModel() string

	// GetDisplayName returns the model name formatted for the title bar.
	GetDisplayName() string

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}

// StreamCallback is called for each chunk of a reply.
type StreamCallback func(chunk string) error
