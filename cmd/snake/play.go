package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/round"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode directly",
	Long: `Start playing the given mode without the main menu.

Modes:
  level     - Clear each level's apple quota to advance
  survival  - Endless; bombs kill, magnets pull apples, scissors cut the tail

Controls:
  Arrows/WASD/HJKL  - Steer
  P                 - Pause (Esc while paused leaves the round)
  R                 - Restart (after game over)
  Enter             - Pick RESTART or MENU on the game over screen
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower ticks, fewer bombs
  normal - Canonical rules
  hard   - Faster ticks, more bombs
  fixed  - Survival never speeds up

Examples:
  snake play survival
  snake play level --level 2
  snake play survival --difficulty hard
  snake play level --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Start level for level mode (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := args[0]

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if mode == round.ModeLevel && (flagLevel < 1 || flagLevel > len(cfg.Level.Levels)) {
		fail("--level must be between 1 and %d", len(cfg.Level.Levels))
	}

	logger, closeLog := newLogger("snake", false)
	defer closeLog()

	opts := round.Options{
		Mode:       mode,
		Config:     cfg,
		StartLevel: flagLevel,
		Seed:       flagSeed,
		Logger:     logger,
	}

	// Open score storage; the game still works without it
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		logger.Warn("score store unavailable", "error", err)
	} else {
		defer store.Close()
		opts.Saver = store
	}

	ctrl, err := round.New(opts)
	if err != nil {
		fail("%v", err)
	}

	width, height := terminalSize()
	if err := tui.RunRound(ctrl, width, height); err != nil {
		logger.Error("round failed", "error", err)
		fail("running game: %v", err)
	}
}
