package tui

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sound"
)

type recordingPlayer struct {
	mu   sync.Mutex
	cues []core.Cue
}

func (p *recordingPlayer) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cues = append(p.cues, cue)
}

func (p *recordingPlayer) Close() {}

func (p *recordingPlayer) played() []core.Cue {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]core.Cue(nil), p.cues...)
}

func newTestModel(t *testing.T) (Model, *recordingPlayer) {
	t.Helper()

	rec := &recordingPlayer{}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(config.DefaultWorldConfig(), sound.NewDispatcher(rec, nil), cfg), rec
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyPause = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestModelTickStepsOnce(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", m.Frames())
	}

	a := m.state.Snapshot().Avatar
	if math.Abs(a.Y-300.15) > 1e-9 || math.Abs(a.Velocity-0.15) > 1e-9 {
		t.Errorf("after one tick avatar y=%v v=%v, expected 300.15 and 0.15", a.Y, a.Velocity)
	}
}

func TestModelActivateAppliesOnNextTick(t *testing.T) {
	m, rec := newTestModel(t)

	m, _ = update(t, m, keySpace)
	if v := m.state.Snapshot().Avatar.Velocity; v != 0 {
		t.Errorf("input applied before the tick, velocity = %v", v)
	}

	m, _ = update(t, m, TickMsg{})
	if v := m.state.Snapshot().Avatar.Velocity; math.Abs(v-(-3.85)) > 1e-9 {
		t.Errorf("velocity after flap and step = %v, expected -3.85", v)
	}
	if got := rec.played(); len(got) != 1 || got[0] != core.CueWing {
		t.Errorf("played %v, expected [wing]", got)
	}

	// Input is consumed by the tick.
	_, _ = update(t, m, TickMsg{})
	if got := rec.played(); len(got) != 1 {
		t.Errorf("flap repeated without input, played %v", got)
	}
}

func TestModelMouseClickActivates(t *testing.T) {
	m, rec := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	_, _ = update(t, m, TickMsg{})

	if got := rec.played(); len(got) != 1 || got[0] != core.CueWing {
		t.Errorf("played %v, expected [wing]", got)
	}
}

func TestModelPauseStopsFrameDriver(t *testing.T) {
	m, rec := newTestModel(t)

	m, _ = update(t, m, keyPause)
	if !m.Paused() {
		t.Fatal("p should pause")
	}

	m, _ = update(t, m, keySpace)
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("ticks should keep coming while paused")
	}
	if m.Frames() != 0 {
		t.Errorf("Frames() = %d while paused, expected 0", m.Frames())
	}
	if y := m.state.Snapshot().Avatar.Y; y != 300 {
		t.Errorf("avatar moved while paused, y = %v", y)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say so")
	}

	m, _ = update(t, m, keyPause)
	m, _ = update(t, m, TickMsg{})
	if m.Frames() != 1 {
		t.Errorf("Frames() = %d after resume, expected 1", m.Frames())
	}
	if got := rec.played(); len(got) != 0 {
		t.Errorf("input while paused should be dropped, played %v", got)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, keyQuit)
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should show the score")
	}
	if !strings.Contains(view, "flap") {
		t.Error("view should show the help footer")
	}
}

func TestModelCrashPlaysHitThenDie(t *testing.T) {
	m, rec := newTestModel(t)

	// Without flapping the avatar reaches the ground in well under 200 frames.
	for range 200 {
		m, _ = update(t, m, TickMsg{})
		if m.state.Phase() != flappy.PhasePlaying {
			break
		}
	}
	if m.state.Phase() == flappy.PhasePlaying {
		t.Fatal("avatar never crashed")
	}
	if got := rec.played(); len(got) == 0 || got[0] != core.CueHit {
		t.Errorf("played %v, expected hit first", got)
	}

	// Let the banner finish dropping in.
	for range 120 {
		m, _ = update(t, m, TickMsg{})
	}
	if m.state.Phase() != flappy.PhaseAwaitingRestart {
		t.Errorf("phase = %v, expected AwaitingRestart", m.state.Phase())
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game-over banner missing")
	}

	m.sounds.Stop()
}

func TestModelSeedDrivesLayout(t *testing.T) {
	world := config.DefaultWorldConfig()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}

	a := NewModel(world, sound.NewDispatcher(sound.Nop{}, nil), cfg)
	b := NewModel(world, sound.NewDispatcher(sound.Nop{}, nil), cfg)
	ref := flappy.New(world, rand.NewSource(7))

	a, _ = update(t, a, TickMsg{})
	b, _ = update(t, b, TickMsg{})
	ref.Step()

	want := ref.Snapshot().Obstacles
	for _, m := range []Model{a, b} {
		got := m.Snapshot().Obstacles
		if len(got) != 1 || len(want) != 1 || got[0] != want[0] {
			t.Errorf("obstacles = %+v, expected %+v for seed 7", got, want)
		}
	}
}

func TestModelZeroSeedIsRandomized(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	m := NewModel(config.DefaultWorldConfig(), sound.NewDispatcher(sound.Nop{}, nil), cfg)

	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced with a time-based seed")
	}
	if m.config.TickRate != 60 {
		t.Errorf("TickRate = %d, expected the world tick rate 60", m.config.TickRate)
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m, _ := newTestModel(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("screenshot should not schedule a command")
	}

	files, err := filepath.Glob(filepath.Join(home, ".flappy", "screenshots", "flappy_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Errorf("screenshot should hold the rendered frame, got %q", data)
	}
}
