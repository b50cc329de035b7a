// Package provider implements reply backends for the chat.
//
// The UI and the conversation store only talk to model.Provider, so the
// mock echo backend can later be swapped for a real one without changing
// how sends are issued or how replies land.
//
// # Usage
//
//	p, err := provider.NewProvider(provider.Config{
//	    Type:  provider.ProviderTypeEcho,
//	    Delay: 200 * time.Millisecond,
//	})
//	if err != nil {
//	    // handle error
//	}
//	err = p.Chat(ctx, messages, callback)
package provider

import "time"

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeEcho ProviderType = "echo"
)

// Config holds provider-specific configuration.
type Config struct {
	Type  ProviderType
	Delay time.Duration // Echo: time before the reply is delivered
}
