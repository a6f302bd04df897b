package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Starman12976/termarcade/internal/core"
)

// EventMapper translates Bubble Tea messages into shell events.
// This centralizes the terminal-to-event translation and makes it testable.
type EventMapper struct{}

// NewEventMapper creates a new event mapper.
func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

// MapKey translates a key message into a shell event.
// Ctrl+C becomes a quit event so the current state can intercept it or
// let the default transition end the program. Every other key arrives
// as a key press carrying Bubble Tea's name for it ("a", "up",
// "enter", ...), which is what control bindings are matched against.
func (em *EventMapper) MapKey(msg tea.KeyMsg) core.Event {
	key := msg.String()

	if key == "ctrl+c" {
		return core.QuitEvent()
	}
	return core.KeyEvent(key)
}

// MapMouse translates a mouse message into a shell event.
// Returns false for mouse activity the shell does not deliver.
func (em *EventMapper) MapMouse(msg tea.MouseMsg) (core.Event, bool) {
	// Wheel events arrive as presses of the wheel pseudo-buttons.
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return core.Event{Kind: core.KindMouseWheel, X: msg.X, Y: msg.Y, Delta: -1}, true
	case tea.MouseButtonWheelDown:
		return core.Event{Kind: core.KindMouseWheel, X: msg.X, Y: msg.Y, Delta: 1}, true
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return core.Event{Kind: core.KindMouseDown, X: msg.X, Y: msg.Y, Button: mapButton(msg.Button)}, true
	case tea.MouseActionRelease:
		return core.Event{Kind: core.KindMouseUp, X: msg.X, Y: msg.Y, Button: mapButton(msg.Button)}, true
	case tea.MouseActionMotion:
		return core.Event{Kind: core.KindMouseMotion, X: msg.X, Y: msg.Y}, true
	}

	return core.Event{}, false
}

// MapResize translates a window size message into a shell event.
func (em *EventMapper) MapResize(msg tea.WindowSizeMsg) core.Event {
	return core.Event{Kind: core.KindResize, Width: msg.Width, Height: msg.Height}
}

// mapButton converts a Bubble Tea mouse button to a shell button.
func mapButton(b tea.MouseButton) core.MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonLeft
	case tea.MouseButtonMiddle:
		return core.ButtonMiddle
	case tea.MouseButtonRight:
		return core.ButtonRight
	default:
		return core.ButtonNone
	}
}
