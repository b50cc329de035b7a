package ui

import (
	"mockchat/model"
)

type Message = model.Message

type replyMsg = model.ReplyMsg
type markdownRenderedMsg = model.MarkdownRenderedMsg
type flashTickMsg = model.FlashTickMsg
