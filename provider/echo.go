package provider

import (
	"context"
	"time"

	"mockchat/config"
	"mockchat/model"
)

// EchoPrefix is prepended to the user's text in every echo reply
const EchoPrefix = "You said: "

// EchoProvider answers every message with the text of the latest user
// message after a fixed delay. It never fails unless ctx ends first.
type EchoProvider struct {
	delay time.Duration
}

func NewEchoProvider(delay time.Duration) *EchoProvider {
	if delay < 0 {
		delay = 0
	}
	return &EchoProvider{delay: delay}
}

// Echo returns the deterministic reply for text.
func Echo(text string) string {
	return EchoPrefix + text
}

func (p *EchoProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	var last string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleUser {
			last = messages[i].Content
			break
		}
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if config.DebugLog != nil {
		config.DebugLog.Debug("echo reply", "delay", p.delay, "len", len(last))
	}
	return callback(Echo(last))
}

func (p *EchoProvider) Delay() time.Duration  { return p.delay }
func (p *EchoProvider) GetModel() string       { return "echo" }
func (p *EchoProvider) GetDisplayName() string { return "Echo" }

func (p *EchoProvider) Ping(ctx context.Context) error {
	return ctx.Err()
}
