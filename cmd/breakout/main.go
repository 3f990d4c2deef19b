// breakout plays the classic brick-breaking game in a terminal or a
// desktop window.
//
// Usage:
//
//	breakout play                  - Play a session
//	breakout frontends             - List available frontends
//	breakout recordings            - List stored session recordings
//	breakout replay <id>           - Re-run a recording and verify it
//
// Global flags:
//
//	--config <path> - Config file (default: search ~/.breakout, ./configs)
//	--seed <value>  - RNG seed for launch draws (0 = time-based)
//	--db <path>     - Recordings database (overrides recordings.db_path)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-breakout/internal/platform/tui"
	_ "github.com/vovakirdan/tui-breakout/internal/platform/window"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, break the bricks",
	Long: `Breakout is the classic paddle-and-ball game. It runs in the terminal
or in a desktop window and can record sessions for exact replay.

Available commands:
  play        - Play a session
  frontends   - Show the available frontends
  recordings  - List or delete stored recordings
  replay      - Re-run a stored recording and verify its final state

Examples:
  breakout play
  breakout play --frontend window --record
  breakout recordings
  breakout replay 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to recordings database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(recordingsCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Recordings.DBPath = flagDBPath
	}
	return cfg, nil
}
