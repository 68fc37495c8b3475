// flappyball is a Flappy Bird-style arcade game for the terminal.
//
// Usage:
//
//	flappyball               - Play
//	flappyball version       - Print the version
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible walls
//	--mute                - Play without sound
//	--log-file <path>     - Set log file (default: ~/.flappyball/flappyball.log)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappyball/internal/core"
)

var (
	// Global flags
	flagRuntime  = core.DefaultConfig()
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappyball",
	Short: "Flappy Ball - keep the ball in the air",
	Long: `Flappy Ball is a Flappy Bird-style game played in your terminal.

Walls of blocks scroll in from the right. Each wall has a gap; flap
through it to score. Touching a block or falling off the bottom ends
the run.

Controls:
  Space/Up/W  - Flap, start, restart
  Q/Ctrl+C    - Quit

Examples:
  flappyball
  flappyball --seed 42
  flappyball --mute --fps 30`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagRuntime.TickRate, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagRuntime.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagRuntime.Muted, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.flappyball/flappyball.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}
