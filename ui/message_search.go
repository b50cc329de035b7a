package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appmodel "mockchat/model"
)

func renderMessageSearch(a AppView, searchInput textinput.Model, results []appmodel.MessageMatch, selectedIdx, width, height int) string {
	kb := a.dataModel.Config.Keybindings

	modalWidth := min(width-4, 100)

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dimColor).
		Padding(1, 2)

	title := TitleStyle.Render("🔍 Search Conversation")

	resultsView := ""
	if len(results) == 0 {
		if searchInput.Value() == "" {
			resultsView = DimStyle.Render("Type to search messages...")
		} else {
			resultsView = DimStyle.Render("No matches found")
		}
	} else {
		// Border(2) + Padding(2) + Title + SearchInput + Count + Footer + 4 blanks
		const fixedOverhead = 12
		const linesPerResult = 3
		maxVisible := max((height-fixedOverhead)/linesPerResult, 1)

		// Keep the selection on screen
		start := 0
		if selectedIdx >= maxVisible {
			start = selectedIdx - maxVisible + 1
		}
		end := min(start+maxVisible, len(results))

		resultsView = fmt.Sprintf("Found %d matches:\n\n", len(results))
		if start > 0 {
			resultsView += DimStyle.Render(fmt.Sprintf("↑ %d more above", start)) + "\n\n"
		}

		for i := start; i < end; i++ {
			match := results[i]

			roleStyle := UserStyle
			if match.Role == appmodel.RoleAssistant {
				roleStyle = AssistantStyle
			}

			matchText := fmt.Sprintf("%s [%s]\n  %s",
				roleStyle.Render(string(match.Role)),
				match.Timestamp.Format("Jan 2, 3:04 PM"),
				match.Preview,
			)

			if i == selectedIdx {
				matchText = SelectedStyle.Render("> " + matchText)
			} else {
				matchText = "  " + matchText
			}
			resultsView += matchText + "\n\n"
		}

		if end < len(results) {
			resultsView += DimStyle.Render(fmt.Sprintf("↓ %d more below", len(results)-end))
		}
	}

	footer := FormatFooter("Type", "to search",
		kb.DisplayActionKey("search_prev")+"/"+kb.DisplayActionKey("search_next"), "Navigate",
		"Enter", "Jump",
		"Esc", "Close")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		searchInput.View(),
		"",
		resultsView,
		"",
		footer,
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		modalStyle.Width(modalWidth).Render(content))
}

func (a AppView) handleMessageSearchUpdate(msg tea.KeyMsg) (AppView, tea.Cmd) {
	kb := a.dataModel.Config.Keybindings
	keyStr := msg.String()

	switch {
	case keyStr == "esc":
		a.closeAllModals()
		return a, a.textarea.Focus()

	case kb.Matches(keyStr, "search_prev"):
		if a.selectedSearchIdx > 0 {
			a.selectedSearchIdx--
		}
		return a, nil

	case kb.Matches(keyStr, "search_next"):
		if a.selectedSearchIdx < len(a.messageSearchResults)-1 {
			a.selectedSearchIdx++
		}
		return a, nil

	case keyStr == "enter":
		if a.selectedSearchIdx < 0 || a.selectedSearchIdx >= len(a.messageSearchResults) {
			return a, nil
		}
		idx := a.messageSearchResults[a.selectedSearchIdx].MessageIndex

		a.closeAllModals()
		a.highlightedMessageIdx = idx
		a.highlightFlashCount = 1
		a.refreshTranscript()
		a.jumpToMessage(idx)

		return a, tea.Batch(a.textarea.Focus(), flashTick())
	}

	var cmd tea.Cmd
	a.messageSearchInput, cmd = a.messageSearchInput.Update(msg)
	a.messageSearchResults = appmodel.SearchMessages(a.dataModel.Messages(), a.messageSearchInput.Value())
	a.selectedSearchIdx = 0
	return a, cmd
}

// jumpToMessage centers message idx in the transcript. Moving the offset
// fires the container's scroll listeners, so the jump-to-latest indicator
// follows.
func (a *AppView) jumpToMessage(idx int) {
	if idx < 0 || idx >= len(a.messageOffsets) {
		return
	}
	a.container.SetScrollTop(a.messageOffsets[idx] - a.container.ClientHeight()/2)
}
