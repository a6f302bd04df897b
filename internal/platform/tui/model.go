package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Starman12976/termarcade/internal/core"
	"github.com/Starman12976/termarcade/internal/state"
)

// Model is the Bubble Tea model that drives the shell frame loop.
//
// Input messages only queue events; all shell work happens on tick, in
// a fixed order: deliver queued events, update the current state,
// redraw the surface, then apply any scheduled transition. Bubble Tea
// presents the frame through View after the tick returns.
type Model struct {
	manager  *state.Manager
	surface  *core.Surface
	mapper   *EventMapper
	logger   *log.Logger
	config   core.RuntimeConfig
	bg       core.Color
	pending  []core.Event
	quitting bool
	faulted  bool // Whether a state panicked during a frame
}

// NewModel creates a Bubble Tea model around a state manager.
func NewModel(manager *state.Manager, cfg core.RuntimeConfig, bg core.Color, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		manager: manager,
		surface: core.NewSurface(cfg.ScreenW, cfg.ScreenH),
		mapper:  NewEventMapper(),
		logger:  logger,
		config:  cfg,
		bg:      bg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	m.pending = append(m.pending, m.mapper.MapKey(msg))
	return m, nil
}

// handleMouse queues mouse input for the next frame.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if ev, ok := m.mapper.MapMouse(msg); ok {
		m.pending = append(m.pending, ev)
	}
	return m, nil
}

// handleResize reacts to terminal size changes. In fullscreen mode the
// surface follows the terminal and states hear about the new size as a
// resize event. With a fixed logical size the terminal size does not
// matter and the message is dropped.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if !m.config.Fullscreen || msg.Width <= 0 || msg.Height <= 0 {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.surface.Resize(msg.Width, msg.Height)
	m.pending = append(m.pending, m.mapper.MapResize(msg))
	return m, nil
}

// handleTick runs one frame of the shell loop.
//
// A panic out of state code is recovered here so the terminal can be
// restored and the failure reported as a fault instead of a crash.
func (m Model) handleTick() (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("frame panicked", "state", m.manager.CurrentName(), "panic", r)
			m.faulted = true
			m.quitting = true
			model, cmd = m, tea.Quit
		}
	}()

	// Deliver input queued since the last frame
	events := m.pending
	m.pending = nil
	for _, ev := range events {
		m.manager.HandleEvent(ev)
	}

	m.manager.Update()

	// Every frame starts from a cleared surface
	m.surface.Fill(' ', m.bg)
	m.manager.Draw(m.surface)

	if m.manager.ChangeState() == state.SignalQuit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the last drawn frame to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".termarcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.manager.CurrentName(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, the shell continues regardless
	os.WriteFile(path, []byte(m.surface.String()), 0o600)
}

// View renders the last drawn frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return RenderSurface(m.surface)
}

// Faulted reports whether a state panicked during a frame.
func (m Model) Faulted() bool {
	return m.faulted
}

// Quitting reports whether the shell has stopped.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the model and blocks until it
// exits. The returned model carries the final quit and fault flags.
// Canceling the context kills the program and makes Run return
// tea.ErrProgramKilled.
func Run(ctx context.Context, model Model) (Model, error) {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		return fm, err
	}
	return model, err
}
