package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockchat/model"
	"mockchat/provider/testutil"
)

func collect(t *testing.T, p *EchoProvider, ctx context.Context, msgs []model.Message) (string, error) {
	t.Helper()
	var got string
	err := p.Chat(ctx, msgs, func(chunk string) error {
		got += chunk
		return nil
	})
	return got, err
}

func TestEchoRepliesToLastUserMessage(t *testing.T) {
	p := NewEchoProvider(0)

	got, err := collect(t, p, context.Background(), testutil.TestMessages())
	require.NoError(t, err)
	assert.Equal(t, "You said: Can you help me with a task?", got)
}

func TestEchoWaitsForDelay(t *testing.T) {
	delay := 40 * time.Millisecond
	p := NewEchoProvider(delay)

	start := time.Now()
	got, err := collect(t, p, context.Background(), testutil.SingleUserMessage("hi"))
	require.NoError(t, err)

	assert.Equal(t, Echo("hi"), got)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestEchoHonoursContext(t *testing.T) {
	p := NewEchoProvider(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := collect(t, p, ctx, testutil.SingleUserMessage("hi"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}

func TestEchoNegativeDelayClamped(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewEchoProvider(-time.Second).Delay())
}

func TestEchoWithoutUserMessage(t *testing.T) {
	got, err := collect(t, NewEchoProvider(0), context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, EchoPrefix, got)
}
