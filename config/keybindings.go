package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// KeyBindingsConfig holds modifier customization and optional per-action overrides
type KeyBindingsConfig struct {
	Modifiers ModifierConfig    `toml:"modifiers"`
	Actions   map[string]string `toml:"actions"`
}

type ModifierConfig struct {
	Primary   string `toml:"primary"`   // alt, ctrl, meta, super
	Secondary string `toml:"secondary"` // alt+shift, ctrl+shift
}

type actionDef struct {
	modifier string // "primary", "secondary" or "none"
	key      string
}

// actionRegistry maps action names to their default keybindings.
// Any of them can be overridden in the [actions] table of keybindings.toml.
var actionRegistry = map[string]actionDef{
	"help":            {"primary", "h"},
	"quit":            {"primary", "q"},
	"search_messages": {"primary", "f"},
	"newline":         {"primary", "enter"},

	"scroll_down":       {"primary", "j"},
	"scroll_up":         {"primary", "k"},
	"scroll_down_arrow": {"primary", "down"},
	"scroll_up_arrow":   {"primary", "up"},
	"half_page_down":    {"secondary", "j"},
	"half_page_up":      {"secondary", "k"},
	"page_down":         {"none", "pgdown"},
	"page_up":           {"none", "pgup"},
	"scroll_to_top":     {"primary", "g"},
	"scroll_to_bottom":  {"secondary", "g"},

	"yank_last_response": {"primary", "y"},
	"yank_conversation":  {"primary", "c"},

	"search_next": {"none", "down"},
	"search_prev": {"none", "up"},
}

// Actions returns the registered action names.
func Actions() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}

func DefaultKeybindings() *KeyBindingsConfig {
	return &KeyBindingsConfig{
		Modifiers: ModifierConfig{
			Primary:   "alt",
			Secondary: "alt+shift",
		},
	}
}

// LoadKeybindings loads keybindings.toml from the data directory, creating it
// from the template on first run. A non-fatal validation warning is returned
// alongside the bindings.
func LoadKeybindings(dataDir string) (*KeyBindingsConfig, string, error) {
	cfg := DefaultKeybindings()
	path := filepath.Join(dataDir, "keybindings.toml")

	if !FileExists(path) {
		if err := CreateDefaultKeybindings(dataDir); err != nil {
			return nil, "", fmt.Errorf("failed to create keybindings: %w", err)
		}
		return cfg, "", nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse keybindings: %w", err)
	}

	ok, warning := cfg.Validate()
	if !ok {
		return nil, "", fmt.Errorf("invalid keybindings: %s", warning)
	}
	return cfg, warning, nil
}

func CreateDefaultKeybindings(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	path := filepath.Join(dataDir, "keybindings.toml")
	if FileExists(path) {
		return nil
	}
	if err := os.WriteFile(path, []byte(GenerateKeybindingsTemplate()), 0600); err != nil {
		return fmt.Errorf("failed to write keybindings: %w", err)
	}
	return nil
}

func GenerateKeybindingsTemplate() string {
	return `# mockchat Keybindings Configuration
# Location: <data_directory>/keybindings.toml
# This file uses TOML format: https://toml.io

[modifiers]
primary = "alt"          # Options: alt, ctrl, meta, super
secondary = "alt+shift"

# For tmux users (Alt may conflict):
#   primary = "ctrl"
#   secondary = "ctrl+shift"

[actions]
# Override single actions here, e.g.
#   scroll_to_bottom = "ctrl+e"
#   quit = "ctrl+shift+q"
`
}

func (kb *KeyBindingsConfig) Primary() string {
	if kb.Modifiers.Primary == "" {
		return "alt"
	}
	return kb.Modifiers.Primary
}

func (kb *KeyBindingsConfig) Secondary() string {
	if kb.Modifiers.Secondary == "" {
		return "alt+shift"
	}
	return kb.Modifiers.Secondary
}

// PrimaryKey builds a keybinding string with the primary modifier ("alt+s").
func (kb *KeyBindingsConfig) PrimaryKey(key string) string {
	return kb.Primary() + "+" + key
}

// SecondaryKey builds a keybinding string with the secondary modifier.
// Terminals report shift+letter as the uppercase letter, so "alt+shift" and
// "g" become "alt+G" rather than "alt+shift+g".
func (kb *KeyBindingsConfig) SecondaryKey(key string) string {
	secondary := kb.Secondary()

	if !strings.Contains(strings.ToLower(secondary), "shift") || len(key) != 1 || key[0] < 'a' || key[0] > 'z' {
		return secondary + "+" + key
	}

	var mods []string
	for _, part := range strings.Split(secondary, "+") {
		if strings.ToLower(part) != "shift" {
			mods = append(mods, part)
		}
	}
	if len(mods) == 0 {
		return strings.ToUpper(key)
	}
	return strings.Join(mods, "+") + "+" + strings.ToUpper(key)
}

// GetActionKey returns the keybinding for an action: user override first,
// then the registry default. Unknown actions return "".
func (kb *KeyBindingsConfig) GetActionKey(action string) string {
	if override, ok := kb.Actions[action]; ok && override != "" {
		return override
	}

	def, ok := actionRegistry[action]
	if !ok {
		return ""
	}
	switch def.modifier {
	case "primary":
		return kb.PrimaryKey(def.key)
	case "secondary":
		return kb.SecondaryKey(def.key)
	default:
		return def.key
	}
}

// Matches reports whether a key string from tea.KeyMsg triggers action.
func (kb *KeyBindingsConfig) Matches(keyStr, action string) bool {
	bound := kb.GetActionKey(action)
	return bound != "" && bound == keyStr
}

// DisplayActionKey returns a display-friendly version of an action's keybinding
// ("alt+G" -> "Alt+Shift+G").
func (kb *KeyBindingsConfig) DisplayActionKey(action string) string {
	key := kb.GetActionKey(action)
	if key == "" {
		return ""
	}
	return capitalizeKeybinding(key)
}

func capitalizeKeybinding(key string) string {
	parts := strings.Split(key, "+")
	hasShift := false
	for _, p := range parts {
		if strings.ToLower(p) == "shift" {
			hasShift = true
		}
	}

	var result []string
	for i, part := range parts {
		if part == "" {
			continue
		}
		// Uppercase single letter after a modifier means shift was held
		if len(part) == 1 && part[0] >= 'A' && part[0] <= 'Z' && !hasShift && i > 0 {
			result = append(result, "Shift")
		}
		result = append(result, strings.ToUpper(part[:1])+part[1:])
	}
	return strings.Join(result, "+")
}

// Validate checks the modifiers. Returns (isValid, warningMessage).
func (kb *KeyBindingsConfig) Validate() (bool, string) {
	primary := kb.Primary()
	secondary := kb.Secondary()

	if primary == "shift" || secondary == "shift" {
		return false, "Shift alone conflicts with typing"
	}
	if strings.Contains(primary, "ctrl") || strings.Contains(secondary, "ctrl") {
		return true, "Ctrl may conflict with terminal shortcuts (Ctrl+C, Ctrl+Z, Ctrl+D)"
	}
	return true, ""
}
