package config

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: "~/.local/share/mockchat",
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Chat: ChatConfig{
			Provider:     "echo",
			ReplyDelayMs: 200,
		},
		Scroll: ScrollConfig{
			BottomTolerance: 3,
			AnimationMs:     300,
			FrameMs:         16,
		},
	}
}

func GenerateSystemConfigTemplate() string {
	return `# mockchat System Configuration
# Location: ~/.config/mockchat/settings.toml
# This file uses TOML format: https://toml.io

# Directory where user config, keybindings and the debug log are stored
data_directory = "~/.local/share/mockchat"
`
}

func GenerateUserConfigTemplate() string {
	return `# mockchat User Configuration
# Location: <data_directory>/config.toml
# This file uses TOML format: https://toml.io

[chat]
# Reply backend. Only "echo" is available.
provider = "echo"

# Delay before the echo reply lands, in milliseconds. 0 replies at once.
reply_delay_ms = 200

[scroll]
# The transcript counts as "at bottom" when the last visible line is
# within this many lines of the end. 0 means only the very last line.
bottom_tolerance = 3

# Duration of the smooth jump-to-latest animation, in milliseconds
animation_ms = 300

# Animation frame interval, in milliseconds
frame_ms = 16
`
}
