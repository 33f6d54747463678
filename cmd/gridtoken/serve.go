package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridtoken/internal/config"
	"github.com/vovakirdan/gridtoken/internal/game"
	"github.com/vovakirdan/gridtoken/internal/platform/tui"
	"github.com/vovakirdan/gridtoken/internal/scenario"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagServeConfig   string
	flagServeScenario string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gridtoken SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

All connections share one world: the scenario's overlay lives in the
server's database, so tokens one player removes stay removed for the next.
Each connection gets its own avatar.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridtoken/host_key

Examples:
  gridtoken serve                            # Listen on :23235
  gridtoken serve --ssh :2222                # Listen on port 2222
  gridtoken serve --scenario dense           # Serve the dense preset
  gridtoken serve --host-key ./my_host_key   # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to a custom config YAML")
	serveCmd.Flags().StringVar(&flagServeScenario, "scenario", "classic", "World preset to serve")
}

func runServe(_ *cobra.Command, _ []string) {
	sc, err := scenario.Get(flagServeScenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gridtoken scenarios' to see available presets.")
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, game.NewParams(gameCfg, sc, flagSeed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting gridtoken SSH server on %s (scenario %s)\n", cfg.Address, sc.Name)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
