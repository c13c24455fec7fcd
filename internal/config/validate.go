package config

import (
	"errors"
	"fmt"
)

// ErrInvalidWorld is returned when the world constants are inconsistent.
var ErrInvalidWorld = errors.New("config: invalid world")

// Validate checks the constants once, before the game loop starts.
// The obstacle generator relies on a non-empty gap range and does not
// re-check it per spawn.
func (c WorldConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"avatar.width", c.Avatar.Width},
		{"avatar.height", c.Avatar.Height},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.gap", c.Obstacles.Gap},
		{"physics.scroll_speed", c.Physics.ScrollSpeed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidWorld, p.name, p.value)
		}
	}

	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		return fmt.Errorf("%w: world.ground_height %v must be in [0, %v)", ErrInvalidWorld, c.World.GroundHeight, c.World.Height)
	}
	if c.Obstacles.SpawnInterval <= 0 {
		return fmt.Errorf("%w: obstacles.spawn_interval must be positive, got %d", ErrInvalidWorld, c.Obstacles.SpawnInterval)
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %d", ErrInvalidWorld, c.Timing.TickRate)
	}
	if c.Timing.DieDelay < 0 {
		return fmt.Errorf("%w: timing.die_delay must not be negative, got %v", ErrInvalidWorld, c.Timing.DieDelay)
	}
	if 2*c.Avatar.HitboxMargin >= c.Avatar.Width || 2*c.Avatar.HitboxMargin >= c.Avatar.Height {
		return fmt.Errorf("%w: avatar.hitbox_margin %v leaves an empty hitbox", ErrInvalidWorld, c.Avatar.HitboxMargin)
	}
	if c.Avatar.X+c.Avatar.Width > c.World.Width {
		return fmt.Errorf("%w: avatar does not fit horizontally", ErrInvalidWorld)
	}

	// The random gap range [MinTop, MaxTop] must be non-empty.
	if maxTop := c.MaxTop(); maxTop < c.Obstacles.MinTop {
		return fmt.Errorf("%w: max top %v < min top %v (ground y %v, min bottom %v, gap %v)",
			ErrInvalidWorld, maxTop, c.Obstacles.MinTop, c.GroundY(), c.Obstacles.MinBottom, c.Obstacles.Gap)
	}

	// The avatar must start above the ground.
	if c.World.Height/2+c.Avatar.Height >= c.GroundY() {
		return fmt.Errorf("%w: avatar starts inside the ground", ErrInvalidWorld)
	}
	return nil
}
