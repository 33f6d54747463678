package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridtoken/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List all world presets",
	Long:  `Shows all registered world presets and what they change.`,
	Run:   runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) {
	presets := scenario.List()

	if len(presets) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, sc := range presets {
		if len(sc.Name) > maxNameLen {
			maxNameLen = len(sc.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, sc := range presets {
		fmt.Printf("  %-*s  %s\n", maxNameLen, sc.Name, sc.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gridtoken play --scenario <name>' to play one.")
}
