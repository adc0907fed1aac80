// Package main is the entry point for the wakadash TUI.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wakadash/wakadash/internal/app"
	"github.com/wakadash/wakadash/internal/config"
	"github.com/wakadash/wakadash/internal/logger"
	"github.com/wakadash/wakadash/internal/services"
	"github.com/wakadash/wakadash/internal/ui/tabs/activity"
	"github.com/wakadash/wakadash/internal/ui/tabs/info"
	"github.com/wakadash/wakadash/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if len(os.Args) > 1 && os.Args[1] == "--debug" {
		logger.SetDebug(true)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The manager owns the source clients, the response cache, and the
	// .env watcher.
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager)

	// Each tab receives the shared application state for consistent data access.
	state := model.GetState()
	tabs := []app.Tab{
		activity.New(state),
		info.New(state, cfg),
	}
	model.SetTabs(tabs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // chart slices respond to hover and click
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`wakadash - WakaTime and GitHub coding-activity dashboard

Usage:
  wakadash [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information
      --debug     Enable debug logging

Keyboard Shortcuts:
  1-2             Switch between tabs (Activity, Info)
  [ / ]           Previous / next tab
  Arrows, hjkl    Move between chart slices
  Tab             Switch chart pane
  Enter/Space     Pin or unpin the hovered slice
  Esc             Clear the selection
  o               Open the WakaTime profile in a browser
  r               Refresh data
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  GITHUB_USERNAME   GitHub account whose public feed is shown (required)
  WAKATIME_API_KEY  WakaTime API key (falls back to ~/.wakatime.cfg)
  WAKATIME_BASE_URL Override the WakaTime API base URL
  GITHUB_BASE_URL   Override the GitHub API base URL
  BADGE_URL         Override the WakaTime badge URL
  CACHE_PATH        SQLite response cache path
  REFRESH_INTERVAL  Background refresh interval (default: 5m)
  REQUEST_TIMEOUT   Per-request HTTP timeout (default: 30s)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/wakadash/.env
  - ~/.wakadash/.env`)
}
