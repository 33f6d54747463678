package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridtoken/internal/scenario"
	"github.com/vovakirdan/gridtoken/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset <scenario>",
	Short: "Drop a scenario's saved overlay",
	Long: `Delete the persistent overlay for a scenario, restoring its world to
pristine generated state. This is the only way progress is ever discarded;
the game never drops a save on its own, even a corrupt one.

Examples:
  gridtoken reset classic`,
	Args: cobra.ExactArgs(1),
	Run:  runReset,
}

func runReset(cmd *cobra.Command, args []string) {
	name := args[0]

	sc, err := scenario.Get(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gridtoken scenarios' to see available presets.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.DeleteBlob(sc.BlobKey()); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting %q: %v\n", name, err)
		os.Exit(1)
	}

	fmt.Printf("Overlay for %q dropped. The world is pristine again.\n", name)
}
