package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair with a vertical gap between Top and Bottom.
type Obstacle struct {
	X      float64 // Left edge
	Width  float64
	Top    float64 // Top edge of the gap
	Bottom float64 // Bottom edge of the gap, Top + gap size
	Passed bool    // Whether the avatar has scored this obstacle
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// OffScreen reports whether the obstacle has fully left the world.
func (o Obstacle) OffScreen() bool {
	return o.X+o.Width <= 0
}

// TopRect returns the rectangle of the upper pipe, from the top of the world to the gap.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, o.Width, o.Top)
}

// BottomRect returns the rectangle of the lower pipe, from the gap down to groundY.
func (o Obstacle) BottomRect(groundY float64) core.Rect {
	return core.NewRect(o.X, o.Bottom, o.Width, groundY-o.Bottom)
}

// Generator spawns obstacles at a fixed frame interval with a random gap position.
type Generator struct {
	cfg config.Obstacles
	rng *rand.Rand
}

// NewGenerator creates a generator drawing gap positions from src.
// The gap range must already be validated with config.WorldConfig.Validate.
func NewGenerator(cfg config.Obstacles, src rand.Source) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(src),
	}
}

// MaybeSpawn returns a new obstacle when frame is a multiple of the spawn
// interval. The top of the gap is uniform over [MinTop, groundY-MinBottom-Gap].
func (g *Generator) MaybeSpawn(frame int, worldWidth, groundY float64) (Obstacle, bool) {
	if frame%g.cfg.SpawnInterval != 0 {
		return Obstacle{}, false
	}

	minTop := g.cfg.MinTop
	maxTop := groundY - g.cfg.MinBottom - g.cfg.Gap
	span := int(math.Floor(maxTop - minTop))

	top := minTop + float64(g.rng.Intn(span+1))

	return Obstacle{
		X:      worldWidth,
		Width:  g.cfg.Width,
		Top:    top,
		Bottom: top + g.cfg.Gap,
	}, true
}
