package model

import (
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

const previewLen = 100

type MessageMatch struct {
	MessageIndex int
	Role         Role
	Preview      string
	Timestamp    time.Time
	Score        int
}

// SearchMessages fuzzy-matches query against message contents. Results are
// ordered best match first; equal scores keep conversation order.
func SearchMessages(messages []Message, query string) []MessageMatch {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	targets := make([]string, len(messages))
	for i, msg := range messages {
		targets[i] = msg.Content
	}

	found := fuzzy.Find(query, targets)
	matches := make([]MessageMatch, 0, len(found))
	for _, f := range found {
		msg := messages[f.Index]
		matches = append(matches, MessageMatch{
			MessageIndex: f.Index,
			Role:         msg.Role,
			Preview:      preview(msg.Content),
			Timestamp:    msg.Timestamp,
			Score:        f.Score,
		})
	}
	return matches
}

func preview(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	runes := []rune(content)
	if len(runes) > previewLen {
		return string(runes[:previewLen]) + "..."
	}
	return content
}
