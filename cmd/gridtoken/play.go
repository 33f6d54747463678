package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridtoken/internal/config"
	"github.com/vovakirdan/gridtoken/internal/game"
	"github.com/vovakirdan/gridtoken/internal/game/overlay"
	"github.com/vovakirdan/gridtoken/internal/platform/tui"
	"github.com/vovakirdan/gridtoken/internal/scenario"
	"github.com/vovakirdan/gridtoken/internal/storage"
)

var (
	flagConfig   string
	flagScenario string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play gridtoken in this terminal",
	Long: `Start an interactive session.

Controls:
  Arrows/WASD - Move the avatar (or pan, in free view)
  Mouse click - Pick up / craft on the clicked cell
  V/Tab       - Toggle between player view and free view
  Q/Ctrl+C    - Quit

In player view the board follows your avatar. In free view you pan the board
independently; your avatar stays put and clicks still measure distance from
the avatar.

Examples:
  gridtoken play
  gridtoken play --scenario marathon
  gridtoken play --config ./my-world.yaml --seed 99`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	playCmd.Flags().StringVar(&flagScenario, "scenario", "classic", "World preset to play")
}

func runPlay(cmd *cobra.Command, args []string) {
	sc, err := scenario.Get(flagScenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gridtoken scenarios' to see available presets.")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	params := game.NewParams(cfg, sc, flagSeed)
	sess, err := game.NewSession(params, store)
	if err != nil {
		if errors.Is(err, overlay.ErrCorrupt) {
			fmt.Fprintf(os.Stderr, "Error: saved progress for %q is corrupt: %v\n", sc.Name, err)
			fmt.Fprintf(os.Stderr, "Run 'gridtoken reset %s' to discard it and start over.\n", sc.Name)
		} else {
			fmt.Fprintf(os.Stderr, "Error starting session: %v\n", err)
		}
		os.Exit(1)
	}

	// Warn about unusably small terminals before entering the altscreen
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < 40 || h < 10) {
		fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is small; the board may be cramped.\n", w, h)
	}

	if err := tui.Run(sess, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
