package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// DefaultWorldConfig returns the built-in world constants.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		World: World{
			Width:        400,
			Height:       600,
			GroundHeight: 112,
		},
		Physics: Physics{
			Gravity:     0.15,
			FallGravity: 0.5,
			FlapImpulse: -4,
			ScrollSpeed: 2,
		},
		Avatar: Avatar{
			X:                50,
			Width:            34,
			Height:           24,
			HitboxMargin:     2,
			FlapAngle:        -25,
			TiltRate:         2,
			MaxTilt:          90,
			FallSpin:         5,
			RestartTolerance: 5,
		},
		Obstacles: Obstacles{
			Width:         52,
			Gap:           100,
			SpawnInterval: 120,
			MinTop:        120,
			MinBottom:     120,
		},
		Timing: Timing{
			TickRate: 60,
			DieDelay: 200 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultWorldYAML
}
