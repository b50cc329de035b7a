package provider

import (
	"context"
	"fmt"

	"mockchat/config"
	"mockchat/model"
)

// NewProvider creates a provider based on configuration.
// Returns an error for unknown provider types.
func NewProvider(cfg Config) (model.Provider, error) {
	switch cfg.Type {
	case ProviderTypeEcho:
		return NewEchoProvider(cfg.Delay), nil
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

// FromAppConfig builds the provider selected in the user config.
func FromAppConfig(cfg *config.Config) (model.Provider, error) {
	p, err := NewProvider(Config{
		Type:  ProviderType(cfg.Provider),
		Delay: cfg.ReplyDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create provider %q: %w", cfg.Provider, err)
	}
	return p, nil
}

// Open builds the configured provider and checks that it answers.
func Open(ctx context.Context, cfg *config.Config) (model.Provider, error) {
	p, err := FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Ping(ctx); err != nil {
		return nil, fmt.Errorf("provider %q is not reachable: %w", cfg.Provider, err)
	}
	return p, nil
}
