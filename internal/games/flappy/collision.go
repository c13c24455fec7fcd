package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collision is the outcome of a collision test.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionObstacle
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "None"
	case CollisionGround:
		return "Ground"
	case CollisionObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Hitbox is the avatar's collision geometry. Body is tested against the
// ground; Inner, inset by the hitbox margin, is tested against obstacles.
type Hitbox struct {
	Body  core.Rect
	Inner core.Rect
}

// Detect tests the hitbox against the ground and every obstacle.
// The ground is checked first and the first hit wins.
func Detect(hb Hitbox, groundY float64, obstacles []Obstacle) Collision {
	if hb.Body.Bottom() >= groundY {
		return CollisionGround
	}

	for _, o := range obstacles {
		span := core.NewRect(o.X, o.Top, o.Width, o.Bottom-o.Top)
		if !hb.Inner.OverlapsX(span) {
			continue
		}
		if !hb.Inner.WithinY(o.Top, o.Bottom) {
			return CollisionObstacle
		}
	}
	return CollisionNone
}
