package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective world configuration",
	Long: `Print the world configuration the game would run with, as YAML.

The configuration is resolved in this order:
  1. --config <path>
  2. ~/.flappy/world.yaml
  3. ./configs/world.yaml
  4. built-in defaults

The output is a complete file suitable for editing.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	world, err := loadWorld()
	if err != nil {
		return err
	}

	data, err := config.Marshal(world)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
