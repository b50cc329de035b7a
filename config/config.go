package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

type SystemConfig struct {
	DataDirectory string `toml:"data_directory"`
}

type ChatConfig struct {
	Provider     string `toml:"provider"`
	ReplyDelayMs int    `toml:"reply_delay_ms"`
}

type ScrollConfig struct {
	BottomTolerance int `toml:"bottom_tolerance"`
	AnimationMs     int `toml:"animation_ms"`
	FrameMs         int `toml:"frame_ms"`
}

type UserConfig struct {
	Chat   ChatConfig   `toml:"chat"`
	Scroll ScrollConfig `toml:"scroll"`
}

type Config struct {
	DataDirectory   string
	Provider        string
	ReplyDelay      time.Duration
	BottomTolerance int
	AnimationTime   time.Duration
	FrameInterval   time.Duration
	Keybindings     *KeyBindingsConfig

	// Warnings collected while loading, before the debug log exists
	Warnings []string
}

var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

// Validate rejects values the scroll and reply code cannot use. Zero is a
// real setting for the tolerance and the reply delay.
func (u *UserConfig) Validate() error {
	if u.Chat.ReplyDelayMs < 0 {
		return fmt.Errorf("chat.reply_delay_ms must be >= 0, got %d", u.Chat.ReplyDelayMs)
	}
	if u.Scroll.BottomTolerance < 0 {
		return fmt.Errorf("scroll.bottom_tolerance must be >= 0, got %d", u.Scroll.BottomTolerance)
	}
	if u.Scroll.AnimationMs <= 0 {
		return fmt.Errorf("scroll.animation_ms must be > 0, got %d", u.Scroll.AnimationMs)
	}
	if u.Scroll.FrameMs <= 0 {
		return fmt.Errorf("scroll.frame_ms must be > 0, got %d", u.Scroll.FrameMs)
	}
	return nil
}

// apply copies a decoded user config onto c. LoadUserConfig decodes on top
// of the defaults, so every field here is either set by the user or a default.
func (c *Config) apply(u *UserConfig) {
	c.Provider = u.Chat.Provider
	c.ReplyDelay = time.Duration(u.Chat.ReplyDelayMs) * time.Millisecond
	c.BottomTolerance = u.Scroll.BottomTolerance
	c.AnimationTime = time.Duration(u.Scroll.AnimationMs) * time.Millisecond
	c.FrameInterval = time.Duration(u.Scroll.FrameMs) * time.Millisecond
}

func (c *Config) applyEnvOverrides() error {
	if dataDir := os.Getenv("MOCKCHAT_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
	if delay := os.Getenv("MOCKCHAT_REPLY_DELAY_MS"); delay != "" {
		ms, err := strconv.Atoi(delay)
		if err != nil || ms < 0 {
			return fmt.Errorf("invalid MOCKCHAT_REPLY_DELAY_MS %q", delay)
		}
		c.ReplyDelay = time.Duration(ms) * time.Millisecond
	}
	return nil
}

func CheckDebug() bool {
	debug := os.Getenv("MOCKCHAT_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	logPath := filepath.Join(dataDir, "debug.log")

	// 0600: transcripts end up in here
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		TimeFormat:      "2006/01/02 15:04:05.000000",
		Level:           log.DebugLevel,
		Prefix:          "mockchat",
	})
	DebugLog.Debug("debug logging started", "env", os.Getenv("MOCKCHAT_DEBUG"))
	DebugLog.Debug("log path", "path", logPath)
}

// Defaults returns a Config populated from DefaultSystemConfig and
// DefaultUserConfig without touching the filesystem.
func Defaults() *Config {
	cfg := &Config{
		DataDirectory: DefaultSystemConfig().DataDirectory,
		Keybindings:   DefaultKeybindings(),
	}
	cfg.apply(DefaultUserConfig())
	return cfg
}

func Load() (*Config, error) {
	cfg := Defaults()

	systemCfg, err := LoadSystemConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}
	if systemCfg.DataDirectory != "" {
		cfg.DataDirectory = systemCfg.DataDirectory
	}

	// Env may relocate the data dir, so it goes before the user config
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := EnsureDataDirPermissions(dataDir); err != nil {
		return nil, fmt.Errorf("failed to set data directory permissions: %w", err)
	}

	userCfg, undecoded, err := LoadUserConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	cfg.apply(userCfg)
	if len(undecoded) > 0 {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown keys in %s: %v", userConfigPath(dataDir), undecoded))
	}

	// Reply delay from env wins over the file
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	kb, warning, err := LoadKeybindings(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load keybindings: %w", err)
	}
	cfg.Keybindings = kb
	if warning != "" {
		cfg.Warnings = append(cfg.Warnings, "keybindings: "+warning)
	}

	return cfg, nil
}
