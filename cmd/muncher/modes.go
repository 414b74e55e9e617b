package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/muncher/internal/games/muncher"
	"github.com/vovakirdan/muncher/internal/registry"
	"github.com/vovakirdan/muncher/internal/storage"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List game modes",
	Long:  `Shows the game modes in menu order with their goal and modifiers.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	_, reg, err := loadModes()
	if err != nil {
		fail("%v", err)
	}

	modes := reg.Modes()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s: %s\n", maxIDLen, m.ID, m.Name, muncher.ModeDetail(m))
	}

	fmt.Println()
	fmt.Println("Run 'muncher play --mode <id>' to start on a mode.")
}

// printSummary prints one line per mode that has been played.
func printSummary(store *storage.Store, modes []registry.ModeInfo) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-6s  %-5s  %-7s  %s\n", "Mode", "Rounds", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-5s  %-7s  %s\n", "----", "------", "----", "-------", "-----------")
	for _, m := range modes {
		s, ok := stats[m.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-5d  %-7.1f  %s\n",
			m.ID, s.Rounds, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
