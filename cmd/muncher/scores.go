package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/muncher/internal/platform/tui"
	"github.com/vovakirdan/muncher/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresRecent int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show round history",
	Long: `Without a mode, show a summary of every mode played.
With a mode, show its top 10 rounds. The score is the number of tokens eaten.

Examples:
  muncher scores
  muncher scores classic
  muncher scores --recent 20
  muncher scores --tui
  muncher scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history interactively")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 0, "Show the N most recent rounds of all modes")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history of the given mode")
}

func runScores(_ *cobra.Command, args []string) {
	_, reg, err := loadModes()
	if err != nil {
		fail("%v", err)
	}

	modeID := ""
	if len(args) == 1 {
		modeID = args[0]
		if !reg.Exists(modeID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
			fmt.Fprintln(os.Stderr, "Run 'muncher modes' to see available modes.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, reg.List(), width, height)

	case flagScoresClear:
		if modeID == "" {
			store.Close()
			fail("--clear needs a mode")
		}
		if err = store.ClearRounds(modeID); err == nil {
			fmt.Printf("Cleared history of %s.\n", modeID)
		}

	case flagScoresRecent > 0:
		err = printRecent(store, flagScoresRecent)

	case modeID != "":
		mode, _ := reg.Lookup(modeID)
		err = printTop(store, modeID, mode.Name)

	default:
		err = printSummary(store, reg.List())
	}

	if err != nil {
		store.Close()
		fail("%v", err)
	}
}

func printTop(store *storage.Store, modeID, title string) error {
	rounds, err := store.TopRounds(modeID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'muncher play --mode %s' to set the first high score!\n", modeID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %-8s  %s\n", "Rank", "Score", "Eaten", "Ticks", "Frontend", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %-8s  %s\n", "----", "-----", "-----", "-----", "--------", "----")
	for i, r := range rounds {
		fmt.Printf("  %-4d  %-6d  %-6d  %-7d  %-8s  %s\n",
			i+1, r.Score, r.EnemyEaten, r.Ticks, r.Frontend, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(modeID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
	return nil
}

func printRecent(store *storage.Store, limit int) error {
	rounds, err := store.RecentRounds(limit)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "Mode", "Score", "Eaten", "Frontend", "Date")
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "--------", "----")
	for _, r := range rounds {
		fmt.Printf("  %-10s  %-6d  %-6d  %-8s  %s\n",
			r.ModeID, r.Score, r.EnemyEaten, r.Frontend, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
