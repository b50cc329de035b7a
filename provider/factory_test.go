package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockchat/config"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:   "echo provider",
			config: Config{Type: ProviderTypeEcho, Delay: 200 * time.Millisecond},
		},
		{
			name:   "echo provider without delay",
			config: Config{Type: ProviderTypeEcho},
		},
		{
			name:        "unknown provider type",
			config:      Config{Type: ProviderType("ollama")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p)
		})
	}
}

func TestFromAppConfig(t *testing.T) {
	cfg := config.Defaults()

	p, err := FromAppConfig(cfg)
	require.NoError(t, err)

	echo, ok := p.(*EchoProvider)
	require.True(t, ok, "expected *EchoProvider, got %T", p)
	assert.Equal(t, 200*time.Millisecond, echo.Delay())

	cfg.Provider = "missing"
	_, err = FromAppConfig(cfg)
	assert.ErrorContains(t, err, "missing")
}

func TestOpen(t *testing.T) {
	cfg := config.Defaults()

	p, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "echo", p.GetModel())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Open(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)

	cfg.Provider = "missing"
	_, err = Open(context.Background(), cfg)
	assert.Error(t, err)
}
