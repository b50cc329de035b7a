package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a AppView) renderHelpModal(width, height int) string {
	kb := a.dataModel.Config.Keybindings

	green := lipgloss.NewStyle().
		Bold(true).
		Foreground(successColor)

	title := green.Render("mockchat - Keyboard Shortcuts")

	blue := lipgloss.NewStyle().Foreground(accentColor)

	chatActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Chat"),
		"• Enter          Send message",
		fmt.Sprintf("• %-14s New line", kb.DisplayActionKey("newline")),
		fmt.Sprintf("• %-14s Copy last response", kb.DisplayActionKey("yank_last_response")),
		fmt.Sprintf("• %-14s Copy conversation", kb.DisplayActionKey("yank_conversation")),
		fmt.Sprintf("• %-14s Search conversation", kb.DisplayActionKey("search_messages")),
		fmt.Sprintf("• %-14s Toggle this help", kb.DisplayActionKey("help")),
		fmt.Sprintf("• %-14s Quit", kb.DisplayActionKey("quit")),
	)

	navigation := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Navigation"),
		fmt.Sprintf("• %-14s Scroll down 1 line", kb.DisplayActionKey("scroll_down")),
		fmt.Sprintf("• %-14s Scroll up 1 line", kb.DisplayActionKey("scroll_up")),
		fmt.Sprintf("• %-14s Half page down", kb.DisplayActionKey("half_page_down")),
		fmt.Sprintf("• %-14s Half page up", kb.DisplayActionKey("half_page_up")),
		fmt.Sprintf("• %-14s Full page down", kb.DisplayActionKey("page_down")),
		fmt.Sprintf("• %-14s Full page up", kb.DisplayActionKey("page_up")),
		fmt.Sprintf("• %-14s Jump to top", kb.DisplayActionKey("scroll_to_top")),
		fmt.Sprintf("• %-14s Jump to latest", kb.DisplayActionKey("scroll_to_bottom")),
		"• Mouse wheel    Scroll",
	)

	columnStyle := lipgloss.NewStyle().Width(42).PaddingLeft(4)

	twoColumns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(chatActions),
		"    ",
		columnStyle.Render(navigation),
	)

	footer := lipgloss.NewStyle().
		Foreground(dimColor).
		Render(fmt.Sprintf("Press %s or Esc to close this help  ·  %s %s",
			kb.DisplayActionKey("help"), a.dataModel.Version, a.dataModel.License))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		twoColumns,
		"",
		footer,
	)

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2).
		Width(min(width-4, 100))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox.Render(content),
	)
}
