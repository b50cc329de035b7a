package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMessages(t *testing.T) {
	now := time.Now()
	msgs := []Message{
		newMessage(0, RoleUser, "hello there", now),
		newMessage(1, RoleAssistant, "You said: hello there", now),
		newMessage(2, RoleUser, "something else", now),
	}

	tests := []struct {
		name    string
		query   string
		indexes []int
	}{
		{"empty query", "", nil},
		{"whitespace query", "   ", nil},
		{"no match", "zzz", nil},
		{"exact word", "else", []int{2}},
		{"fuzzy subsequence", "hlo", []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for _, m := range SearchMessages(msgs, tt.query) {
				got = append(got, m.MessageIndex)
			}
			assert.ElementsMatch(t, tt.indexes, got)
		})
	}
}

func TestSearchMessagesMatchFields(t *testing.T) {
	long := strings.Repeat("word ", 40)
	msgs := []Message{newMessage(0, RoleAssistant, long, time.Now())}

	matches := SearchMessages(msgs, "word")
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, RoleAssistant, m.Role)
	assert.True(t, strings.HasSuffix(m.Preview, "..."))
	assert.Len(t, []rune(m.Preview), previewLen+3)
}
