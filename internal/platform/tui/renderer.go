package tui

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Banner geometry, as fractions of the screen height.
const (
	bannerStart    = -0.3
	bannerRest     = 0.3
	bannerDuration = 0.9 // Seconds
	bannerWidth    = 26
	bannerHeight   = 6
)

// Wing frames cycle while the avatar is rising.
var wingFrames = [3]rune{'⌃', '─', '⌄'}

// Renderer draws simulation snapshots into a screen buffer.
// It never touches the simulation; its only state is the banner animation.
type Renderer struct {
	banner  *gween.Tween
	bannerY float32
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{bannerY: bannerRest}
}

// Advance moves the banner animation forward by dt seconds.
// The banner starts dropping the first time snap is game over.
func (r *Renderer) Advance(snap flappy.Snapshot, dt float32) {
	if !snap.GameOver() {
		r.banner = nil
		return
	}
	if r.banner == nil {
		r.banner = gween.New(bannerStart, bannerRest, bannerDuration, ease.OutBounce)
		r.bannerY = bannerStart
	}
	r.bannerY, _ = r.banner.Update(dt)
}

// Render draws snap into dst, replacing its previous contents.
func (r *Renderer) Render(dst *core.Screen, snap flappy.Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.WorldWidth <= 0 || snap.WorldHeight <= 0 {
		return
	}

	v := viewport{
		sx: float64(dst.Width()) / snap.WorldWidth,
		sy: float64(dst.Height()) / snap.WorldHeight,
	}

	world := core.NewRect(0, 0, snap.WorldWidth, snap.WorldHeight)

	r.drawSky(dst, v, snap)
	for _, o := range snap.Obstacles {
		r.drawObstacle(dst, v, o, world, snap.GroundY)
	}
	r.drawGround(dst, v, snap)
	r.drawAvatar(dst, v, snap)
	r.drawHUD(dst, snap)

	if snap.GameOver() {
		r.drawBanner(dst, snap)
	}
}

// viewport maps world pixels to screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// cells maps a world rectangle to a cell rectangle. Adjacent world
// rectangles map to adjacent cell rectangles.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x, y = v.col(r.X), v.row(r.Y)
	return x, y, v.col(r.Right()) - x, v.row(r.Bottom()) - y
}

func (r *Renderer) drawSky(dst *core.Screen, v viewport, snap flappy.Snapshot) {
	dst.Fill(' ', core.ColorSky)

	// Clouds drift at a quarter of the ground speed.
	clouds := []struct{ x, y float64 }{{60, 90}, {230, 150}, {340, 60}}
	span := snap.WorldWidth + 80
	for _, c := range clouds {
		x := math.Mod(c.x+snap.GroundOffset/4, span)
		if x < -80 {
			x += span
		}
		dst.DrawText(v.col(x), v.row(c.y), "░▒▒░", core.ColorCloud)
	}
}

func (r *Renderer) drawObstacle(dst *core.Screen, v viewport, o flappy.Obstacle, world core.Rect, groundY float64) {
	upper, lower := o.TopRect(), o.BottomRect(groundY)
	if !upper.Intersects(world) && !lower.Intersects(world) {
		return
	}

	x, y, w, h := v.cells(upper)
	w = max(w, 1)
	dst.FillRect(x, y, w, h, '█', core.ColorPipe)
	// Caps are one cell wider on each side and face the gap.
	if h > 0 {
		dst.FillRect(x-1, y+h-1, w+2, 1, '▄', core.ColorPipeCap)
	}

	x, y, w, h = v.cells(lower)
	w = max(w, 1)
	dst.FillRect(x, y, w, h, '█', core.ColorPipe)
	if h > 0 {
		dst.FillRect(x-1, y, w+2, 1, '▀', core.ColorPipeCap)
	}
}

// groundPattern repeats along the top edge of the ground band.
const groundPattern = "╱╱╱ "

func (r *Renderer) drawGround(dst *core.Screen, v viewport, snap flappy.Snapshot) {
	top := core.Clamp(v.row(snap.GroundY), 0, dst.Height()-1)

	pattern := []rune(groundPattern)
	shift := -v.col(snap.GroundOffset)
	for x := range dst.Width() {
		i := ((x+shift)%len(pattern) + len(pattern)) % len(pattern)
		dst.SetColored(x, top, pattern[i], core.ColorGroundTop)
	}
	dst.FillRect(0, top+1, dst.Width(), dst.Height()-top-1, '░', core.ColorGround)
}

func (r *Renderer) drawAvatar(dst *core.Screen, v viewport, snap flappy.Snapshot) {
	a := snap.Avatar
	cx, cy := a.Body().Center()
	x, y := v.col(cx)-1, v.row(cy)

	wing := wingFrames[1]
	if a.Velocity < 0 {
		wing = wingFrames[(snap.Frame/5)%3]
	}

	dst.SetColored(x, y, wing, core.ColorWing)
	dst.SetColored(x+1, y, 'O', core.ColorBird)
	dst.SetColored(x+2, y, beakGlyph(a.Rotation), core.ColorBeak)
}

// beakGlyph picks the beak rune for a rotation in radians.
func beakGlyph(rotation float64) rune {
	deg := rotation * 180 / math.Pi
	switch {
	case deg <= -10:
		return '╱'
	case deg < 20:
		return '>'
	case deg < 60:
		return '╲'
	default:
		return 'v'
	}
}

func (r *Renderer) drawHUD(dst *core.Screen, snap flappy.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorText)

	best := fmt.Sprintf("Best: %d", snap.HighScore)
	dst.DrawText(dst.Width()-len(best)-1, 0, best, core.ColorText)
}

func (r *Renderer) drawBanner(dst *core.Screen, snap flappy.Snapshot) {
	y := int(math.Round(float64(r.bannerY) * float64(dst.Height())))
	w := min(bannerWidth, dst.Width())
	x := (dst.Width() - w) / 2

	dst.FillRect(x, y, w, bannerHeight, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, bannerHeight, core.ColorBanner)
	dst.DrawTextCentered(y+1, "GAME OVER", core.ColorBanner)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Score %d  Best %d", snap.Score, max(snap.Score, snap.HighScore)), core.ColorText)
	dst.DrawHLine(x+1, y+3, w-2, '─', core.ColorBanner)
	if snap.Phase == flappy.PhaseAwaitingRestart {
		dst.DrawTextCentered(y+4, "space to restart", core.ColorHint)
	}
}
