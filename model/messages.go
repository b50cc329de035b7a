package model

// ReplyMsg carries the outcome of one provider call. Seq is the send it
// answers; replies are appended in Seq order.
type ReplyMsg struct {
	Seq     int
	Content string
	Err     error
}

type MarkdownRenderedMsg struct {
	MessageIndex int
	Content      string
	Rendered     string
}

type FlashTickMsg struct{}
