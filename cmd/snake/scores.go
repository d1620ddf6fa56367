package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 5 scores for one mode, or for both when no mode is given.

Examples:
  snake scores
  snake scores survival
  snake scores level --clear
  snake scores --backend sqlite`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Remove all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	modes := storage.Modes
	if len(args) == 1 {
		if !storage.ValidMode(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
			os.Exit(1)
		}
		modes = []string{args[0]}
	}
	if flagClear && len(args) == 0 {
		fail("--clear needs a mode")
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		fail("opening score store: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(modes[0]); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Cleared %s scores.\n", modes[0])
		return
	}

	table, err := store.LoadScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	for i, mode := range modes {
		if i > 0 {
			fmt.Println()
		}
		printScores(store, table, mode)
	}
}

// printScores prints one mode's table. SQLite stores add the date.
func printScores(store storage.Store, table storage.Table, mode string) {
	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	scores, _ := table.For(mode)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", mode)
		return
	}

	if db, ok := store.(*storage.SQLiteStore); ok {
		if entries, err := db.TopScores(mode); err == nil {
			fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
			fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
			for i, e := range entries {
				fmt.Printf("  %-4d  %-10d  %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
			}
			return
		}
	}

	fmt.Printf("  %-4s  %s\n", "Rank", "Score")
	fmt.Printf("  %-4s  %s\n", "----", "-----")
	for i, s := range scores {
		fmt.Printf("  %-4d  %d\n", i+1, s)
	}
}
