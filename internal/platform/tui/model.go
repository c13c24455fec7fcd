package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sound"
)

// Model is the Bubble Tea model driving one game session.
// Each tick advances the simulation by exactly one step unless paused.
type Model struct {
	state    *flappy.State
	renderer *Renderer
	sounds   *sound.Dispatcher
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig

	inputFrame core.InputFrame
	frames     int // Ticks that advanced the simulation
	paused     bool
	quitting   bool
}

// NewModel creates a new game in world seeded with cfg.Seed.
// Sound events are handed to sounds.
func NewModel(world config.WorldConfig, sounds *sound.Dispatcher, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = world.Timing.TickRate
	}

	h := help.New()
	h.ShortSeparator = "  "

	return Model{
		state:      flappy.New(world, rand.NewSource(cfg.Seed)),
		renderer:   NewRenderer(),
		sounds:     sounds,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// playfieldHeight leaves one row for the help footer.
func playfieldHeight(screenH int) int {
	return max(screenH-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Screenshot) {
			m.saveScreenshot()
			return m, nil
		}
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleAction(MouseAction(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.sounds.Stop()
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionActivate:
		if !m.paused {
			m.inputFrame.Set(core.ActionActivate)
		}
	}
	return m, nil
}

// handleTick applies buffered input, then advances the simulation one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		if m.inputFrame.Has(core.ActionActivate) {
			m.sounds.Dispatch(m.state.Activate().Events)
		}
		m.sounds.Dispatch(m.state.Step().Events)
		m.frames++

		m.renderer.Advance(m.state.Snapshot(), 1/float32(m.config.TickRate))
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text to ~/.flappy/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	m.renderer.Render(m.screen, m.state.Snapshot())

	dir := filepath.Join(home, ".flappy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// Frames returns how many ticks advanced the simulation.
func (m Model) Frames() int {
	return m.frames
}

// Paused reports whether the frame driver is stopped.
func (m Model) Paused() bool {
	return m.paused
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.state.Snapshot())
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorBanner)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the current simulation state.
func (m Model) Snapshot() flappy.Snapshot {
	return m.state.Snapshot()
}

// Run plays a local game until quit and returns the final state.
func Run(world config.WorldConfig, sounds *sound.Dispatcher, cfg core.RuntimeConfig) (flappy.Snapshot, error) {
	p := tea.NewProgram(
		NewModel(world, sounds, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return flappy.Snapshot{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return flappy.Snapshot{}, fmt.Errorf("tui: unexpected final model %T", final)
	}
	return m.Snapshot(), nil
}
