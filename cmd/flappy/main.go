// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play a game in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective world configuration
//
// Global flags:
//
//	--config <path>  - World configuration YAML
//	--fps <rate>     - Override the tick rate from the world configuration
//	--seed <value>   - Set RNG seed for reproducible obstacle layouts
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "flappy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between the pipes.
Every pipe you pass scores a point; touching a pipe or the ground ends the round.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective world configuration

Examples:
  flappy
  flappy play --seed 42
  flappy play --assets ./sounds
  flappy serve --ssh :2222
  flappy config > ~/.flappy/world.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to world config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the world config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
