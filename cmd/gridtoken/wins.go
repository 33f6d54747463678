package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridtoken/internal/scenario"
	"github.com/vovakirdan/gridtoken/internal/storage"
)

var winsCmd = &cobra.Command{
	Use:   "wins [scenario]",
	Short: "Show recorded wins",
	Long: `Display the fastest recorded wins for a scenario.

Examples:
  gridtoken wins
  gridtoken wins marathon`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWins,
}

func runWins(cmd *cobra.Command, args []string) {
	name := "classic"
	if len(args) > 0 {
		name = args[0]
	}

	if !scenario.Exists(name) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'gridtoken scenarios' to see available presets.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	wins, err := store.TopWins(name, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving wins: %v\n", err)
		os.Exit(1)
	}

	if len(wins) == 0 {
		fmt.Printf("No wins recorded for %q yet.\n", name)
		return
	}

	fmt.Printf("Fastest wins - %s\n", name)
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %s\n", "Rank", "Time", "Crafts", "Value", "When")
	for i, w := range wins {
		elapsed := (time.Duration(w.Duration) * time.Second).String()
		when := w.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-7d  %-8d  %s\n", i+1, elapsed, w.Crafts, w.Value, when)
	}
}
