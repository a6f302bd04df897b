package state

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/Starman12976/termarcade/internal/core"
)

// QuitName is the reserved registry key for the terminal quit entry.
// It is always registered; scheduling a transition to it ends the
// program. No state may be registered under it.
const QuitName = "quit"

// Signal is the Manager's verdict after a transition check.
type Signal int

const (
	// SignalContinue means the frame loop keeps running.
	SignalContinue Signal = iota
	// SignalQuit means the frame loop must stop after this tick.
	SignalQuit
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalContinue:
		return "Continue"
	case SignalQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// entry is one registry slot: a state, or a terminal marker with no state.
type entry struct {
	state    State
	terminal bool
}

// Manager owns the fixed state registry and tracks the current state.
// The registry is sealed at construction: states cannot be added or
// removed afterwards, so a transition target either exists for the
// whole run or never does.
type Manager struct {
	logger  *log.Logger
	entries map[string]entry
	current State
	name    string
}

// NewManager builds a manager over a fixed registry and makes the
// initial state current. The reserved quit entry is added automatically
// and must not appear in states.
func NewManager(logger *log.Logger, states map[string]State, initial string) (*Manager, error) {
	if logger == nil {
		logger = log.Default()
	}
	if len(states) == 0 {
		return nil, fmt.Errorf("state: no states registered")
	}

	entries := make(map[string]entry, len(states)+1)
	for name, s := range states {
		if name == "" {
			return nil, fmt.Errorf("state: state registered with empty name")
		}
		if name == QuitName {
			return nil, fmt.Errorf("state: %q is reserved for the terminal entry", QuitName)
		}
		if s == nil {
			return nil, fmt.Errorf("state: state %q is nil", name)
		}
		entries[name] = entry{state: s}
	}
	entries[QuitName] = entry{terminal: true}

	first, ok := entries[initial]
	if !ok || first.terminal {
		return nil, fmt.Errorf("state: initial state %q is not a registered state", initial)
	}

	m := &Manager{
		logger:  logger,
		entries: entries,
		current: first.state,
		name:    initial,
	}
	m.current.ClearNextState()
	return m, nil
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// CurrentName returns the registry key of the current state.
func (m *Manager) CurrentName() string {
	return m.name
}

// Names returns all registry keys in sorted order, terminal included.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HandleEvent forwards an event to the current state.
func (m *Manager) HandleEvent(ev core.Event) {
	m.current.HandleEvent(ev)
}

// Update advances the current state by one tick.
func (m *Manager) Update() {
	m.current.Update()
}

// Draw renders the current state onto the surface.
func (m *Manager) Draw(s *core.Surface) {
	m.current.Draw(s)
}

// ChangeState performs the current state's scheduled transition, if any.
//
// An empty slot keeps the current state and continues. A name missing
// from the registry is a fault: it is logged and the program stops. A
// terminal entry stops the program with the current state unchanged.
// Otherwise the target becomes current and its own transition slot is
// cleared, so a name left over from an earlier visit cannot fire again.
func (m *Manager) ChangeState() Signal {
	name := m.current.NextState()
	if name == "" {
		return SignalContinue
	}

	e, ok := m.entries[name]
	if !ok {
		m.logger.Error("transition to unregistered state", "from", m.name, "to", name)
		return SignalQuit
	}
	if e.terminal {
		m.logger.Debug("terminal state reached", "from", m.name, "to", name)
		return SignalQuit
	}

	m.logger.Debug("state changed", "from", m.name, "to", name)
	m.current = e.state
	m.name = name
	m.current.ClearNextState()
	return SignalContinue
}

// Cleanup runs Cleanup on every registered state, in sorted name order.
// A panic in one state's cleanup is logged and does not stop the others.
func (m *Manager) Cleanup() {
	for _, name := range m.Names() {
		e := m.entries[name]
		if e.terminal {
			continue
		}
		m.cleanupState(name, e.state)
	}
}

func (m *Manager) cleanupState(name string, s State) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("state cleanup panicked", "state", name, "panic", r)
		}
	}()
	s.Cleanup()
}
