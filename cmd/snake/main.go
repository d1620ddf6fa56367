// snake is a terminal snake game with a staged level mode and an endless
// survival mode.
//
// Usage:
//
//	snake                    - Start the main menu
//	snake list               - List play modes
//	snake play <mode>        - Play a mode directly
//	snake menu               - Start the main menu
//	snake serve              - Start SSH server for remote play
//	snake scores [mode]      - Show high scores
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom snake.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--scores <path>       - Score file (default: ~/.snake/scores.json)
//	--backend <name>      - Score backend: json or sqlite
//	--log-file <path>     - Log file (default: ~/.snake/snake.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/level"
	_ "github.com/vovakirdan/tui-snake/internal/games/survival"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagScoresPath string
	flagBackend    string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - level and survival snake in your terminal",
	Long: `Snake is a terminal snake game with two modes:

  level     - Four stages with apple quotas, rising speed and obstacles
  survival  - Endless play with bombs, magnets and scissors

Available commands:
  list     - Show the play modes
  play     - Play a mode directly
  menu     - Interactive main menu (default)
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  snake
  snake play survival
  snake play level --level 3
  snake scores level
  snake serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "", "Path to the score file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Score backend: json or sqlite (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.snake/snake.log", "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
