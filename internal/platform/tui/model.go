package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Model is the Bubble Tea model hosting one session.
// Each TickMsg runs exactly one loop step.
type Model struct {
	loop     *engine.Loop
	input    *keyInput
	surface  *cellSurface
	keys     KeyMap
	help     help.Model
	tickRate int
	state    core.GameState
	quitting bool
}

// stateful is implemented by simulations that can report their state
// before the first tick.
type stateful interface {
	State() core.GameState
}

// NewModel creates a model for a terminal of width x height cells.
func NewModel(opts registry.RunOptions, width, height int) (Model, error) {
	return newModel(opts, width, height, engine.SystemClock{})
}

func newModel(opts registry.RunOptions, width, height int, clock engine.Clock) (Model, error) {
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = breakout.TargetFPS
	}

	input := newKeyInput(opts.ReleaseAfter, opts.RepeatDelay, clock.Now)
	surface := newCellSurface(width-chromeCols, height-chromeRows)

	loop, err := engine.NewLoop(opts.Simulation, engine.Options{
		Input:    input,
		Surface:  surface,
		Clock:    clock,
		Observer: opts.Observer,
		Logger:   opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = width

	m := Model{
		loop:     loop,
		input:    input,
		surface:  surface,
		keys:     DefaultKeyMap(),
		help:     h,
		tickRate: tickRate,
	}
	if s, ok := opts.Simulation.(stateful); ok {
		m.state = s.State()
	}
	return m, nil
}

// Loop returns the frame loop driven by the model.
func (m Model) Loop() *engine.Loop {
	return m.loop
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.surface.Fit(msg.Width-chromeCols, msg.Height-chromeRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key for the next tick. Quit is queued too so the
// loop finishes the tick it is in before stopping.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, quit := m.keys.Translate(msg)
	if quit {
		m.input.Quit()
		return m, nil
	}
	m.input.Press(k)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	running := m.loop.Step()
	if m.loop.Ticks() > 0 {
		m.state = m.loop.LastResult().State
	}
	if !running {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the last presented frame with the status and help lines.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderView(m.surface.Frame(), m.state, m.help.View(m.keys))
}
