package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mockchat/config"
)

const flashInterval = 300 * time.Millisecond

func flashTick() tea.Cmd {
	return tea.Tick(flashInterval, func(time.Time) tea.Msg {
		return flashTickMsg{}
	})
}

// handleUIMessage handles replies, finished markdown renders and the search
// highlight flash.
func (a AppView) handleUIMessage(msg tea.Msg) (AppView, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		// Position is read before the transcript grows
		pin := a.sync.PinToBottom()
		appended := a.dataModel.HandleReply(msg)
		a.refreshTranscript()

		cmds := []tea.Cmd{pin}
		base := a.dataModel.Conversation.Len() - len(appended)
		for i, m := range appended {
			cmds = append(cmds, renderMarkdownAsync(base+i, m.Content, a.width))
		}
		return a, tea.Batch(cmds...)

	case markdownRenderedMsg:
		if !a.dataModel.Conversation.SetRendered(msg.MessageIndex, msg.Content, msg.Rendered) {
			if config.DebugLog != nil {
				config.DebugLog.Debug("discarding stale markdown render", "message", msg.MessageIndex)
			}
			return a, nil
		}
		pin := a.sync.PinToBottom()
		a.refreshTranscript()
		return a, pin

	case flashTickMsg:
		if a.highlightFlashCount > 0 && a.highlightFlashCount < 6 {
			a.highlightFlashCount++
			a.refreshTranscript()
			return a, flashTick()
		}
		a.highlightedMessageIdx = -1
		a.highlightFlashCount = 0
		a.refreshTranscript()
		return a, nil
	}

	return a, nil
}
