package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/sound"
)

var (
	flagAssets string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/W/Enter/Click  - Flap (restart once the bird is on the ground)
  P/Esc                   - Pause
  Q/Ctrl+C                - Quit

Sound:
  Cues are synthesized unless --assets names a directory holding
  wing.wav, point.wav, hit.wav, die.wav and swoosh.wav.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --mute
  flappy play --config ./my-world.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory of WAV sound cues (empty = synthesized)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	world, err := loadWorld()
	if err != nil {
		return err
	}

	player, err := openPlayer(flagAssets, flagMute)
	if err != nil {
		return err
	}
	defer player.Close()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = world.Timing.TickRate
	cfg.Seed = flagSeed

	logger.Debug("starting game", "seed", cfg.Seed, "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	sounds := sound.NewDispatcher(player, nil)
	defer sounds.Stop()

	final, err := tui.Run(world, sounds, cfg)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("game over", "score", final.Score, "best", max(final.HighScore, final.Score))
	return nil
}

// loadWorld loads the world config and applies the --fps override.
func loadWorld() (config.WorldConfig, error) {
	world, err := config.Load(flagConfig)
	if err != nil {
		return world, err
	}
	if flagFPS > 0 {
		world.Timing.TickRate = flagFPS
	}
	return world, nil
}

// openPlayer builds the sound player. Broken assets are fatal; a missing
// audio device only silences the game.
func openPlayer(assets string, mute bool) (sound.Player, error) {
	if mute {
		return sound.Nop{}, nil
	}

	bank := sound.SynthBank()
	if assets != "" {
		var err error
		if bank, err = sound.LoadBank(assets); err != nil {
			return nil, err
		}
	}

	player, err := sound.NewBeepPlayer(bank)
	if errors.Is(err, sound.ErrNoAudioDevice) {
		logger.Warn("sound disabled", "err", err)
		return sound.Nop{}, nil
	}
	if err != nil {
		return nil, err
	}
	return player, nil
}
