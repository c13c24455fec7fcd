package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// testSnapshot is a default-sized world with one obstacle mid-screen.
func testSnapshot() flappy.Snapshot {
	return flappy.Snapshot{
		WorldWidth:  400,
		WorldHeight: 600,
		GroundY:     488,
		Avatar:      flappy.Avatar{X: 50, Y: 300, Width: 34, Height: 24},
		Obstacles: []flappy.Obstacle{
			{X: 200, Width: 52, Top: 200, Bottom: 300},
		},
		Score:     3,
		HighScore: 7,
		Phase:     flappy.PhasePlaying,
	}
}

func TestRenderHUD(t *testing.T) {
	s := core.NewScreen(80, 24)
	NewRenderer().Render(s, testSnapshot())

	row := s.Row(0)
	if !strings.Contains(row, "Score: 3") {
		t.Errorf("row 0 = %q, expected it to contain the score", row)
	}
	if !strings.Contains(row, "Best: 7") {
		t.Errorf("row 0 = %q, expected it to contain the high score", row)
	}
}

func TestRenderGroundBand(t *testing.T) {
	s := core.NewScreen(80, 24)
	NewRenderer().Render(s, testSnapshot())

	top := int(math.Floor(488 * 24.0 / 600))
	for x := range s.Width() {
		if c := s.GetCell(x, top).Color; c != core.ColorGroundTop {
			t.Fatalf("ground top cell (%d, %d) color = %v, expected ColorGroundTop", x, top, c)
		}
	}
	for y := top + 1; y < s.Height(); y++ {
		if s.GetCell(0, y).Rune != '░' {
			t.Errorf("ground fill at row %d = %q", y, s.GetCell(0, y).Rune)
		}
	}
}

func TestRenderGroundScrolls(t *testing.T) {
	snap := testSnapshot()
	a := core.NewScreen(80, 24)
	b := core.NewScreen(80, 24)

	NewRenderer().Render(a, snap)
	snap.GroundOffset = -5
	NewRenderer().Render(b, snap)

	top := int(math.Floor(488 * 24.0 / 600))
	if a.Row(top) == b.Row(top) {
		t.Error("ground pattern should move with the ground offset")
	}
}

func TestRenderObstacle(t *testing.T) {
	s := core.NewScreen(80, 24)
	NewRenderer().Render(s, testSnapshot())

	// Obstacle spans world x 200..252, columns 40..50.
	col := 45
	if s.GetCell(col, 2).Color != core.ColorPipe {
		t.Errorf("upper pipe missing at (%d, 2)", col)
	}
	if s.GetCell(col, 15).Color != core.ColorPipe {
		t.Errorf("lower pipe missing at (%d, 15)", col)
	}
	// Gap rows 8..11 are open sky.
	for y := 9; y < 12; y++ {
		if c := s.GetCell(col, y).Color; c == core.ColorPipe || c == core.ColorPipeCap {
			t.Errorf("gap at (%d, %d) is drawn as pipe", col, y)
		}
	}
}

func TestRenderAvatar(t *testing.T) {
	s := core.NewScreen(80, 24)
	NewRenderer().Render(s, testSnapshot())

	// Avatar center (67, 312) maps to column 13, row 12.
	if s.GetCell(13, 12).Rune != 'O' || s.GetCell(13, 12).Color != core.ColorBird {
		t.Errorf("avatar body not at (13, 12), row = %q", s.Row(12))
	}
	if s.GetCell(14, 12).Rune != '>' {
		t.Errorf("level avatar beak = %q, expected '>'", s.GetCell(14, 12).Rune)
	}
}

func TestBeakGlyph(t *testing.T) {
	tests := []struct {
		deg      float64
		expected rune
	}{
		{-25, '╱'},
		{0, '>'},
		{30, '╲'},
		{90, 'v'},
	}

	for _, tc := range tests {
		if got := beakGlyph(tc.deg * math.Pi / 180); got != tc.expected {
			t.Errorf("beakGlyph(%v°) = %q, expected %q", tc.deg, got, tc.expected)
		}
	}
}

func TestRenderBannerOnlyWhenGameOver(t *testing.T) {
	s := core.NewScreen(80, 24)
	r := NewRenderer()

	snap := testSnapshot()
	r.Render(s, snap)
	if strings.Contains(s.String(), "GAME OVER") {
		t.Error("banner shown while playing")
	}

	snap.Phase = flappy.PhaseFalling
	r.Render(s, snap)
	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("banner missing while falling")
	}
	if strings.Contains(s.String(), "restart") {
		t.Error("restart hint shown before the avatar rests")
	}

	snap.Phase = flappy.PhaseAwaitingRestart
	r.Render(s, snap)
	if !strings.Contains(s.String(), "space to restart") {
		t.Error("restart hint missing while awaiting restart")
	}
}

func TestBannerDropsIn(t *testing.T) {
	r := NewRenderer()
	snap := testSnapshot()
	snap.Phase = flappy.PhaseFalling

	r.Advance(snap, 1.0/60)
	first := r.bannerY
	if first >= bannerRest {
		t.Errorf("banner starts at %v, expected above rest %v", first, bannerRest)
	}

	for range 120 {
		r.Advance(snap, 1.0/60)
	}
	if math.Abs(float64(r.bannerY-bannerRest)) > 1e-3 {
		t.Errorf("banner settled at %v, expected %v", r.bannerY, bannerRest)
	}

	// Back to playing resets the animation for the next game over.
	snap.Phase = flappy.PhasePlaying
	r.Advance(snap, 1.0/60)
	snap.Phase = flappy.PhaseFalling
	r.Advance(snap, 1.0/60)
	if r.bannerY >= bannerRest {
		t.Errorf("banner did not restart its drop, at %v", r.bannerY)
	}
}

func TestRenderDoesNotMutateState(t *testing.T) {
	snap := testSnapshot()
	before := snap.Obstacles[0]

	s := core.NewScreen(80, 24)
	NewRenderer().Render(s, snap)

	if snap.Obstacles[0] != before {
		t.Errorf("obstacle changed during render: %+v", snap.Obstacles[0])
	}
}

func TestRenderTinyScreen(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 3}} {
		s := core.NewScreen(size[0], size[1])
		snap := testSnapshot()
		snap.Phase = flappy.PhaseAwaitingRestart
		NewRenderer().Render(s, snap)
	}
}

func TestRenderSkipsObstaclesOutsideWorld(t *testing.T) {
	snap := testSnapshot()
	snap.Obstacles = []flappy.Obstacle{
		{X: -60, Width: 52, Top: 200, Bottom: 300},
		{X: 420, Width: 52, Top: 200, Bottom: 300},
	}

	s := core.NewScreen(80, 24)
	NewRenderer().Render(s, snap)

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y).Color; c == core.ColorPipe || c == core.ColorPipeCap {
				t.Fatalf("pipe drawn at (%d, %d) for obstacles outside the world", x, y)
			}
		}
	}
}

func TestRenderObstacleCapsFaceGap(t *testing.T) {
	s := core.NewScreen(80, 24)
	NewRenderer().Render(s, testSnapshot())

	// Top 200 and bottom 300 map to rows 8 and 12.
	if s.GetCell(45, 7).Rune != '▄' || s.GetCell(39, 7).Color != core.ColorPipeCap {
		t.Errorf("upper cap row = %q", s.Row(7))
	}
	if s.GetCell(45, 12).Rune != '▀' || s.GetCell(50, 12).Color != core.ColorPipeCap {
		t.Errorf("lower cap row = %q", s.Row(12))
	}
}

func TestRenderBannerDivider(t *testing.T) {
	s := core.NewScreen(80, 24)
	snap := testSnapshot()
	snap.Phase = flappy.PhaseAwaitingRestart
	NewRenderer().Render(s, snap)

	// Banner at rest starts at row round(0.3*24) = 7, divider 3 rows below.
	row := s.Row(10)
	if !strings.Contains(row, "│"+strings.Repeat("─", bannerWidth-2)+"│") {
		t.Errorf("banner divider missing, row 10 = %q", row)
	}
}
