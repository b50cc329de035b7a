package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mockchat/config"
	appmodel "mockchat/model"
	"mockchat/scroll"
)

// Lines taken by everything but the transcript: title, separator, the
// new-messages indicator, the textarea and the status bar.
const chromeHeight = 1 + 1 + 1 + 3 + 1

type AppView struct {
	// Reference to core data model
	dataModel *appmodel.Model

	// The synchronizer holds on to the container, input and resize source,
	// so they live behind pointers to survive AppView copies.
	container *scroll.ViewportContainer
	textarea  *textarea.Model
	resize    *scroll.Signal
	sync      *scroll.Synchronizer

	// Window state
	width  int
	height int
	ready  bool

	showHelp bool

	loadingSpinner spinner.Model

	// Line offset of each message in the transcript, refreshed on render
	messageOffsets []int

	showMessageSearch    bool
	messageSearchInput   textinput.Model
	messageSearchResults []appmodel.MessageMatch
	selectedSearchIdx    int

	highlightedMessageIdx int
	highlightFlashCount   int
}

func NewAppView(cfg *config.Config, p appmodel.Provider, chat appmodel.Chat, version, license string) AppView {
	if cfg.Keybindings == nil {
		cfg.Keybindings = config.DefaultKeybindings()
	}

	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(80)

	// Enter sends, so newlines get their own binding
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys(cfg.Keybindings.GetActionKey("newline")))

	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "| "
	})

	messageSearchInput := textinput.New()
	messageSearchInput.Prompt = "Search: "
	messageSearchInput.CharLimit = 100

	loadingSpinner := spinner.New()
	loadingSpinner.Spinner = spinner.Dot
	loadingSpinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	tolerance := cfg.BottomTolerance
	if tolerance == 0 {
		tolerance = scroll.NoTolerance
	}
	sync := scroll.New(scroll.Options{
		Tolerance:     tolerance,
		Duration:      cfg.AnimationTime,
		FrameInterval: cfg.FrameInterval,
	})

	return AppView{
		dataModel:             appmodel.NewModel(cfg, p, chat, version, license),
		container:             scroll.NewViewportContainer(0, 0),
		textarea:              &ta,
		resize:                &scroll.Signal{},
		sync:                  sync,
		loadingSpinner:        loadingSpinner,
		messageSearchInput:    messageSearchInput,
		highlightedMessageIdx: -1,
	}
}

func (a AppView) Init() tea.Cmd {
	// Mounting waits for the first WindowSizeMsg, when the transcript has a size
	return textarea.Blink
}

// Close tears down the scroll synchronizer. Safe to call more than once.
func (a AppView) Close() {
	a.sync.Unmount()
}

// ScrollState exposes the synchronizer's view of the transcript position.
func (a AppView) ScrollState() scroll.State {
	return a.sync.State()
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading mockchat..."
	}

	if a.showHelp {
		return a.renderHelpModal(a.width, a.height)
	}

	if a.showMessageSearch {
		return renderMessageSearch(a, a.messageSearchInput, a.messageSearchResults, a.selectedSearchIdx, a.width, a.height)
	}

	kb := a.dataModel.Config.Keybindings

	providerName := "No provider"
	if a.dataModel.Provider != nil {
		providerName = a.dataModel.Provider.GetDisplayName()
	}

	title := AssistantStyle.Render("mockchat") +
		TitleStyle.Render(fmt.Sprintf(" - %s", providerName)) +
		UserStyle.Render(fmt.Sprintf(" - %s", a.dataModel.Conversation.Title()))
	if n := a.dataModel.Pending(); n > 0 {
		title += DimStyle.Render(fmt.Sprintf(" | %d pending", n))
	}

	separator := ""

	indicator := ""
	if a.sync.State().ShowScrollButton {
		indicator = renderScrollIndicator(kb.DisplayActionKey("scroll_to_bottom"), a.width)
	}

	descStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	statusBar := strings.Join([]string{
		kb.DisplayActionKey("quit") + " " + descStyle.Render("Quit"),
		kb.DisplayActionKey("help") + " " + descStyle.Render("Help"),
		kb.DisplayActionKey("search_messages") + " " + descStyle.Render("Search"),
		kb.DisplayActionKey("newline") + " " + descStyle.Render("New Line"),
		"Enter " + descStyle.Render("Send"),
		kb.DisplayActionKey("yank_last_response") + " " + descStyle.Render("Copy"),
	}, "  ")
	statusBar = StatusStyle.Render(statusBar)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		separator,
		a.container.View(),
		indicator,
		a.textarea.View(),
		statusBar,
	)
}

func (a *AppView) closeAllModals() {
	a.showHelp = false
	a.showMessageSearch = false
	if a.messageSearchInput.Focused() {
		a.messageSearchInput.Blur()
	}
}
