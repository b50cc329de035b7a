package model

import (
	"strconv"
	"time"
)

// Conversation is an ordered, append-only list of messages. Insertion order
// is display order.
//
// Messages() hands out a cached snapshot that stays valid until the next
// append or render update invalidates it. Not safe for concurrent use: all
// mutation happens on the Bubble Tea update loop.
type Conversation struct {
	id       string
	title    string
	messages []Message

	snapshot []Message
	valid    bool

	now func() time.Time
}

func NewConversation(chat Chat) *Conversation {
	msgs := make([]Message, len(chat.Messages))
	copy(msgs, chat.Messages)
	return &Conversation{
		id:       chat.ID,
		title:    chat.Title,
		messages: msgs,
		now:      time.Now,
	}
}

func newMessage(position int, role Role, content string, ts time.Time) Message {
	return Message{
		ID:        strconv.Itoa(position),
		Role:      role,
		Content:   content,
		Timestamp: ts,
	}
}

func (c *Conversation) ID() string    { return c.id }
func (c *Conversation) Title() string { return c.title }
func (c *Conversation) Len() int      { return len(c.messages) }

// Append creates a message whose id is the list length at creation time and
// appends it.
func (c *Conversation) Append(role Role, content string) Message {
	msg := newMessage(len(c.messages), role, content, c.now())
	c.messages = append(c.messages, msg)
	c.valid = false
	return msg
}

// Messages returns the current ordered message list. The slice is shared
// between calls until the conversation changes; callers must not modify it.
func (c *Conversation) Messages() []Message {
	if !c.valid {
		c.snapshot = make([]Message, len(c.messages))
		copy(c.snapshot, c.messages)
		c.valid = true
	}
	return c.snapshot
}

// Last returns the newest message, or false when the conversation is empty.
func (c *Conversation) Last() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// LastOf returns the newest message with the given role.
func (c *Conversation) LastOf(role Role) (Message, bool) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == role {
			return c.messages[i], true
		}
	}
	return Message{}, false
}

// SetRendered stores the rendered form of a message. Content is untouched.
// Returns false when index is out of range or the content changed underneath.
func (c *Conversation) SetRendered(index int, content, rendered string) bool {
	if index < 0 || index >= len(c.messages) || c.messages[index].Content != content {
		return false
	}
	c.messages[index].Rendered = rendered
	c.valid = false
	return true
}
