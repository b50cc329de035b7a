package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mockchat/config"
	"mockchat/model"
	"mockchat/provider"
	"mockchat/ui"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

func showStartupError(title string, err error) {
	p := tea.NewProgram(
		ui.NewErrorModal(title, err),
		tea.WithAltScreen(),
	)
	if _, runErr := p.Run(); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		showStartupError("Configuration Error", err)
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog(cfg.DataDir())
	for _, w := range cfg.Warnings {
		if config.DebugLog != nil {
			config.DebugLog.Warn("config", "warning", w)
		} else {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	p, err := provider.Open(ctx, cfg)
	cancel()
	if err != nil {
		showStartupError("Provider Error", err)
	}

	if config.DebugLog != nil {
		config.DebugLog.Info("starting", "version", Version, "provider", p.GetModel(), "reply_delay", cfg.ReplyDelay)
	}

	prog := tea.NewProgram(
		ui.NewAppView(cfg, p, model.MockChat(), Version, License),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := prog.Run()
	if app, ok := final.(ui.AppView); ok {
		app.Close()
	}
	if err != nil {
		fmt.Printf("Error running mockchat: %v\n", err)
		os.Exit(1)
	}
}
