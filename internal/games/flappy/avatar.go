package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Avatar is the player-controlled bird. X never changes; the world scrolls
// past it.
type Avatar struct {
	X, Y     float64
	Width    float64
	Height   float64
	Velocity float64 // Pixels per frame, positive = down
	Rotation float64 // Radians, cosmetic only
}

// newAvatar places the avatar at its starting position, vertically centered.
func newAvatar(cfg config.WorldConfig) Avatar {
	return Avatar{
		X:      cfg.Avatar.X,
		Y:      cfg.World.Height / 2,
		Width:  cfg.Avatar.Width,
		Height: cfg.Avatar.Height,
	}
}

// Body returns the avatar's full sprite bounds.
func (a Avatar) Body() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}

// Hitbox returns the collision geometry for the avatar.
func (a Avatar) Hitbox(margin float64) Hitbox {
	body := a.Body()
	return Hitbox{Body: body, Inner: body.Inset(margin)}
}

// degToRad converts config angles to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
