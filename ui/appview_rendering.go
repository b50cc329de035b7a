package ui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/mattn/go-runewidth"

	"mockchat/config"
	appmodel "mockchat/model"
)

const waitingText = "Waiting for response..."

var (
	inlineCodeRegex = regexp.MustCompile(`(?s)\x1b\[44;3m(.*?)\x1b\[0m`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
	urlRegex        = regexp.MustCompile(`(https?://[^\s]+)`)
)

// refreshTranscript re-renders every message into the viewport. SetContent
// is the container's mutation point, so the synchronizer re-checks the
// position on every call.
func (a *AppView) refreshTranscript() {
	messages := a.dataModel.Messages()
	if len(messages) == 0 && a.dataModel.Pending() == 0 {
		a.messageOffsets = nil
		a.container.SetContent("No messages yet. Start chatting!")
		return
	}

	var content strings.Builder
	offsets := make([]int, len(messages))
	lines := 0

	for i, msg := range messages {
		offsets[i] = lines

		highlightPrefix := ""
		if i == a.highlightedMessageIdx && a.highlightFlashCount%2 == 1 {
			highlightPrefix = HighlightStyle.Render(">>> ")
		}

		timestamp := DimStyle.Render(msg.Timestamp.Format("[15:04]"))

		var block string
		switch msg.Role {
		case appmodel.RoleUser:
			block = formatUserMessage(highlightPrefix, timestamp, UserStyle.Render("You"), msg.Display())
		default:
			block = fmt.Sprintf("%s%s %s\n%s\n\n", highlightPrefix, timestamp, AssistantStyle.Render("Assistant"), msg.Display())
		}

		content.WriteString(block)
		lines += strings.Count(block, "\n")
	}

	if a.dataModel.Pending() > 0 {
		content.WriteString(fmt.Sprintf("%s %s\n", a.loadingSpinner.View(), DimStyle.Render(waitingText)))
	}

	a.messageOffsets = offsets
	a.container.SetContent(content.String())
}

func formatUserMessage(highlightPrefix, timestamp, role, content string) string {
	bar := UserStyle.Render("┃")

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s%s %s %s\n", highlightPrefix, bar, timestamp, role))
	for _, line := range strings.Split(content, "\n") {
		result.WriteString(fmt.Sprintf("%s %s\n", bar, line))
	}
	result.WriteString("\n")

	return result.String()
}

// renderScrollIndicator right-aligns the jump-to-latest hint.
func renderScrollIndicator(jumpKey string, width int) string {
	text := fmt.Sprintf("↓ New messages (%s)", jumpKey)
	if w := runewidth.StringWidth(text); w < width {
		text = strings.Repeat(" ", width-w) + text
	} else {
		text = runewidth.Truncate(text, width, "…")
	}
	return IndicatorStyle.Render(text)
}

func postProcessMarkdown(rendered string) string {
	// Inline code: blue background becomes red text
	rendered = inlineCodeRegex.ReplaceAllString(rendered, "\x1b[31m$1\x1b[0m")
	return colorURLs(rendered)
}

// preprocessLinks turns [text](url) into the bare url so every link renders
// the same way.
func preprocessLinks(content string) string {
	return mdLinkRegex.ReplaceAllString(content, "$2")
}

func colorURLs(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		// Code block lines carry the ┃ gutter
		if !strings.Contains(line, "┃") {
			lines[i] = urlRegex.ReplaceAllString(line, "\x1b[31m$1\x1b[0m")
		}
	}
	return strings.Join(lines, "\n")
}

func renderMarkdown(content string, width int) string {
	// Autolink off: URLs stay plain text for the terminal to detect
	p := parser.NewWithExtensions(markdown.Extensions() &^ parser.Autolink)
	r := markdown.NewRenderer(max(width-4, 20), 0)
	doc := p.Parse([]byte(preprocessLinks(content)))
	return strings.TrimRight(postProcessMarkdown(string(gomarkdown.Render(doc, r))), "\n")
}

func renderMarkdownAsync(messageIndex int, content string, width int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		rendered := renderMarkdown(content, width)

		if config.DebugLog != nil {
			config.DebugLog.Debug("markdown rendered", "message", messageIndex, "chars", len(content), "elapsed", time.Since(start))
		}

		return markdownRenderedMsg{
			MessageIndex: messageIndex,
			Content:      content,
			Rendered:     rendered,
		}
	}
}

// renderAll schedules a markdown render for every message.
func (a AppView) renderAll() tea.Cmd {
	var cmds []tea.Cmd
	for i, msg := range a.dataModel.Messages() {
		cmds = append(cmds, renderMarkdownAsync(i, msg.Content, a.width))
	}
	return tea.Batch(cmds...)
}
