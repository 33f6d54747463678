// gridtoken is a map-overlaid collection and crafting game: a deterministic
// infinite grid of numeric tokens, a persistent overlay of everything the
// player changed, and one rule - merge equal tokens into double-value tokens
// until the target falls.
//
// Usage:
//
//	gridtoken play                 - Play in the terminal
//	gridtoken play --scenario dense
//	gridtoken serve                - Start SSH server for remote play
//	gridtoken scenarios            - List world presets
//	gridtoken wins [scenario]      - Show recorded wins
//	gridtoken reset <scenario>     - Drop a scenario's saved overlay
//
// Global flags:
//
//	--seed <value>  - Override the world seed
//	--db <path>     - Set database path (default: ~/.gridtoken/gridtoken.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridtoken",
	Short: "gridtoken - collect and craft tokens on an infinite grid",
	Long: `gridtoken is a terminal game played on an infinite, procedurally
generated grid. Walk your avatar around, click tokens next to you to pick
them up, and click a matching token to craft a double-value one. Craft your
way up to the target value to win. Everything you change is saved - the
world remembers.

Available commands:
  play       - Play in this terminal
  serve      - Start SSH server for remote play
  scenarios  - List world presets
  wins       - Show recorded wins
  reset      - Drop a scenario's saved overlay

Examples:
  gridtoken play
  gridtoken play --scenario dense
  gridtoken serve --ssh :23235
  gridtoken wins classic
  gridtoken reset scarce`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed override (0 = scenario/config value)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridtoken/gridtoken.db", "Path to the gridtoken database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(winsCmd)
	rootCmd.AddCommand(resetCmd)
}
