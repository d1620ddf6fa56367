package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a round ends, choose MENU to return here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back from the level list
  Q            - Quit

Examples:
  snake menu
  snake menu --backend sqlite
  snake menu --scores ./scores.json`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog := newLogger("snake", false)
	defer closeLog()

	opts := tui.SessionOptions{
		Config: cfg,
		Logger: logger,
		Seed:   flagSeed,
	}
	opts.Width, opts.Height = terminalSize()

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		logger.Warn("score store unavailable", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if err := tui.RunSession(opts); err != nil {
		logger.Error("session failed", "error", err)
		fail("%v", err)
	}
}
