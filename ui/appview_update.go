package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mockchat/config"
	appmodel "mockchat/model"
	"mockchat/scroll"
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.update(msg)
	// Every update cycle ends with a position re-check
	next.sync.Updated()
	return next, cmd
}

func (a AppView) update(msg tea.Msg) (AppView, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case scroll.FrameMsg, scroll.SettledMsg:
		return a, a.sync.Update(msg)

	case spinner.TickMsg:
		if a.dataModel.Pending() == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		pin := a.sync.PinToBottom()
		a.refreshTranscript()
		return a, tea.Batch(cmd, pin)

	case tea.WindowSizeMsg:
		return a.handleResize(msg)

	case tea.MouseMsg:
		if a.showHelp || a.showMessageSearch {
			return a, nil
		}
		return a, a.container.Update(msg)

	case replyMsg, markdownRenderedMsg, flashTickMsg:
		return a.handleUIMessage(msg)

	case tea.KeyMsg:
		if handled, next, cmd := a.handleKey(msg); handled {
			return next, cmd
		}
	}

	if !a.showHelp && !a.showMessageSearch {
		var cmd tea.Cmd
		*a.textarea, cmd = a.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a AppView) handleResize(msg tea.WindowSizeMsg) (AppView, tea.Cmd) {
	widthChanged := msg.Width != a.width
	a.width = msg.Width
	a.height = msg.Height

	a.container.SetSize(a.width, max(a.height-chromeHeight, 1))
	a.textarea.SetWidth(a.width)

	if !a.ready {
		a.ready = true
		a.refreshTranscript()
		mount := a.sync.Mount(scroll.Host{
			Container: a.container,
			Input:     a.textarea,
			Resize:    a.resize,
		})
		return a, tea.Batch(mount, a.renderAll())
	}

	a.resize.Emit()
	if widthChanged {
		// Rendered markdown wraps to the old width
		return a, a.renderAll()
	}
	return a, nil
}

// handleKey reports whether msg was consumed.
func (a AppView) handleKey(msg tea.KeyMsg) (bool, AppView, tea.Cmd) {
	kb := a.dataModel.Config.Keybindings
	keyStr := msg.String()

	if kb.Matches(keyStr, "quit") || keyStr == "ctrl+c" {
		if config.DebugLog != nil {
			config.DebugLog.Info("quit requested", "key", keyStr)
		}
		a.sync.Unmount()
		return true, a, tea.Quit
	}

	if kb.Matches(keyStr, "help") {
		if a.showHelp {
			a.showHelp = false
		} else {
			a.closeAllModals()
			a.showHelp = true
		}
		return true, a, nil
	}

	if a.showHelp {
		if keyStr == "esc" {
			a.showHelp = false
		}
		return true, a, nil
	}

	if a.showMessageSearch {
		next, cmd := a.handleMessageSearchUpdate(msg)
		return true, next, cmd
	}

	switch {
	case kb.Matches(keyStr, "search_messages"):
		a.closeAllModals()
		a.showMessageSearch = true
		a.messageSearchInput.SetValue("")
		a.messageSearchResults = nil
		a.selectedSearchIdx = 0
		a.textarea.Blur()
		return true, a, tea.Batch(a.messageSearchInput.Focus(), textinput.Blink)

	case keyStr == "enter":
		next, cmd := a.send()
		return true, next, cmd

	case kb.Matches(keyStr, "yank_last_response"):
		if last, ok := a.dataModel.Conversation.LastOf(appmodel.RoleAssistant); ok {
			copyToClipboard(last.Content)
		}
		return true, a, nil

	case kb.Matches(keyStr, "yank_conversation"):
		copyToClipboard(formatConversation(a.dataModel.Messages()))
		return true, a, nil

	case kb.Matches(keyStr, "scroll_down"), kb.Matches(keyStr, "scroll_down_arrow"):
		a.container.LineDown(1)
		return true, a, nil

	case kb.Matches(keyStr, "scroll_up"), kb.Matches(keyStr, "scroll_up_arrow"):
		a.container.LineUp(1)
		return true, a, nil

	case kb.Matches(keyStr, "half_page_down"):
		a.container.HalfPageDown()
		return true, a, nil

	case kb.Matches(keyStr, "half_page_up"):
		a.container.HalfPageUp()
		return true, a, nil

	case kb.Matches(keyStr, "page_down"):
		a.container.PageDown()
		return true, a, nil

	case kb.Matches(keyStr, "page_up"):
		a.container.PageUp()
		return true, a, nil

	case kb.Matches(keyStr, "scroll_to_top"):
		a.container.GotoTop()
		return true, a, nil

	case kb.Matches(keyStr, "scroll_to_bottom"):
		return true, a, a.sync.ScrollToBottom(false)
	}

	return false, a, nil
}

// send appends the textarea contents as a user message and starts its reply.
func (a AppView) send() (AppView, tea.Cmd) {
	text := strings.TrimSpace(a.textarea.Value())
	if text == "" {
		return a, nil
	}
	a.textarea.Reset()

	wasIdle := a.dataModel.Pending() == 0

	pin := a.sync.PinToBottom()
	reply := a.dataModel.SendMessage(text)
	a.refreshTranscript()

	userIdx := a.dataModel.Conversation.Len() - 1
	cmds := []tea.Cmd{reply, pin, renderMarkdownAsync(userIdx, text, a.width)}
	if wasIdle {
		cmds = append(cmds, a.loadingSpinner.Tick)
	}
	return a, tea.Batch(cmds...)
}

func copyToClipboard(text string) {
	if err := clipboard.WriteAll(text); err != nil && config.DebugLog != nil {
		config.DebugLog.Warn("clipboard write failed", "err", err)
	}
}

func formatConversation(messages []Message) string {
	var b strings.Builder
	for _, msg := range messages {
		role := "You"
		if msg.Role == appmodel.RoleAssistant {
			role = "Assistant"
		}
		b.WriteString(fmt.Sprintf("[%s] %s:\n%s\n\n", msg.Timestamp.Format("15:04"), role, msg.Content))
	}
	return b.String()
}
