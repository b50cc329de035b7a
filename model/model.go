package model

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mockchat/config"
)

// replyTimeout bounds a single provider call
const replyTimeout = 30 * time.Second

// Model holds the core application data and business logic state
type Model struct {
	Config       *config.Config
	Provider     Provider
	Conversation *Conversation

	// Reply ordering: nextSeq is handed to the next send, nextDeliver is the
	// send whose reply must land next. Early replies wait in held.
	nextSeq     int
	nextDeliver int
	held        map[int]ReplyMsg

	Version string
	License string
}

// NewModel creates a new Model seeded with chat.
func NewModel(cfg *config.Config, p Provider, chat Chat, version, license string) *Model {
	return &Model{
		Config:       cfg,
		Provider:     p,
		Conversation: NewConversation(chat),
		held:         make(map[int]ReplyMsg),
		Version:      version,
		License:      license,
	}
}

// Messages is the read view of the conversation.
func (m *Model) Messages() []Message {
	return m.Conversation.Messages()
}

// Pending returns the number of sends still waiting for their reply.
func (m *Model) Pending() int {
	return m.nextSeq - m.nextDeliver
}

// SendMessage appends a user message and returns the single command that
// fetches its reply. The command is never cancelled or deduplicated.
func (m *Model) SendMessage(text string) tea.Cmd {
	m.Conversation.Append(RoleUser, text)

	seq := m.nextSeq
	m.nextSeq++

	if config.DebugLog != nil {
		config.DebugLog.Debug("send", "seq", seq, "len", len(text))
	}

	return requestReply(m.Provider, seq, m.Conversation.Messages())
}

func requestReply(p Provider, seq int, history []Message) tea.Cmd {
	return func() tea.Msg {
		if p == nil {
			return ReplyMsg{Seq: seq, Err: errors.New("no provider configured")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()

		var reply strings.Builder
		err := p.Chat(ctx, history, func(chunk string) error {
			reply.WriteString(chunk)
			return nil
		})
		return ReplyMsg{Seq: seq, Content: reply.String(), Err: err}
	}
}

// HandleReply appends replies as assistant messages in send order and
// returns the messages appended by this call. A reply that overtook an
// earlier one is held back until the earlier one arrives. Failed replies
// append nothing.
func (m *Model) HandleReply(msg ReplyMsg) []Message {
	if msg.Seq < m.nextDeliver || msg.Seq >= m.nextSeq {
		if config.DebugLog != nil {
			config.DebugLog.Warn("dropping reply with unknown seq", "seq", msg.Seq)
		}
		return nil
	}
	m.held[msg.Seq] = msg

	var appended []Message
	for {
		next, ok := m.held[m.nextDeliver]
		if !ok {
			break
		}
		delete(m.held, m.nextDeliver)
		m.nextDeliver++

		if next.Err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Error("reply failed", "seq", next.Seq, "err", next.Err)
			}
			continue
		}
		appended = append(appended, m.Conversation.Append(RoleAssistant, next.Content))
	}
	return appended
}
