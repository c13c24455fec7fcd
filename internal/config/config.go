// Package config provides YAML-based world configuration loading and
// validation for the game.
package config

import "time"

// WorldConfig contains every tunable constant of the simulation.
type WorldConfig struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Avatar    Avatar    `yaml:"avatar"`
	Obstacles Obstacles `yaml:"obstacles"`
	Timing    Timing    `yaml:"timing"`
}

// World defines the canvas dimensions.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// Physics defines kinematic parameters.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Applied while playing
	FallGravity float64 `yaml:"fall_gravity"` // Applied during the post-collision fall
	FlapImpulse float64 `yaml:"flap_impulse"` // Negative = up
	ScrollSpeed float64 `yaml:"scroll_speed"` // Obstacles move left by this much per frame
}

// Avatar defines the player's body and its cosmetic rotation.
// Angles are in degrees.
type Avatar struct {
	X                float64 `yaml:"x"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	HitboxMargin     float64 `yaml:"hitbox_margin"`
	FlapAngle        float64 `yaml:"flap_angle"`
	TiltRate         float64 `yaml:"tilt_rate"`
	MaxTilt          float64 `yaml:"max_tilt"`
	FallSpin         float64 `yaml:"fall_spin"`
	RestartTolerance float64 `yaml:"restart_tolerance"`
}

// Obstacles defines gap-obstacle generation.
type Obstacles struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	SpawnInterval int     `yaml:"spawn_interval"` // Frames between spawns
	MinTop        float64 `yaml:"min_top"`        // Minimum obstacle height above the gap
	MinBottom     float64 `yaml:"min_bottom"`     // Minimum obstacle height between gap and ground
}

// Timing defines real-time parameters of the presentation.
type Timing struct {
	TickRate int           `yaml:"tick_rate"`
	DieDelay time.Duration `yaml:"die_delay"`
}

// GroundY returns the y-coordinate of the top of the ground band.
func (c WorldConfig) GroundY() float64 {
	return c.World.Height - c.World.GroundHeight
}

// MaxTop returns the largest allowed y for the top edge of a gap.
func (c WorldConfig) MaxTop() float64 {
	return c.GroundY() - c.Obstacles.MinBottom - c.Obstacles.Gap
}
