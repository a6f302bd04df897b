// Package state implements the shell's state machine: the State
// contract screens satisfy, the Base they embed for event dispatch and
// transition scheduling, and the Manager that owns the registry and
// performs transitions between ticks.
package state

import (
	"github.com/Starman12976/termarcade/internal/core"
)

// HandlerFunc processes a single input event.
type HandlerFunc func(core.Event)

// State is one screen of the application. It consumes events, advances
// its logic once per tick, and draws itself onto the frame surface.
// A state requests a transition by setting its next-state slot; the
// Manager performs the switch at the end of the tick.
type State interface {
	// HandleEvent dispatches one event through the state's handler table.
	HandleEvent(ev core.Event)

	// Update advances the state's logic by one tick.
	Update()

	// Draw renders the state onto the surface. The surface arrives
	// already cleared to the background color.
	Draw(s *core.Surface)

	// Cleanup releases any resources the state holds. Called exactly
	// once per state when the program shuts down.
	Cleanup()

	// NextState returns the scheduled transition target, or empty if none.
	NextState() string

	// ClearNextState resets the transition slot. The Manager calls this
	// on a state as it becomes current.
	ClearNextState()
}

// Base provides the common state machinery: a per-kind event handler
// table and the next-state slot. Concrete states embed it and register
// handlers for the kinds they care about.
//
// The zero value is ready to use. Events with no registered handler are
// ignored, except quit requests, which fall back to scheduling a
// transition to the terminal quit entry. Registering a handler for
// core.KindQuit overrides that default.
type Base struct {
	handlers map[core.Kind]HandlerFunc
	next     string
}

// On registers the handler for an event kind, replacing any previous one.
func (b *Base) On(kind core.Kind, fn HandlerFunc) {
	if b.handlers == nil {
		b.handlers = make(map[core.Kind]HandlerFunc)
	}
	b.handlers[kind] = fn
}

// HandleEvent looks up the handler for the event's kind and runs it.
// Kinds without a handler are ignored.
func (b *Base) HandleEvent(ev core.Event) {
	if fn, ok := b.handlers[ev.Kind]; ok {
		fn(ev)
		return
	}
	if ev.Kind == core.KindQuit {
		b.TransitionTo(QuitName)
	}
}

// TransitionTo schedules a transition to the named registry entry.
// The last scheduled name within a tick wins.
func (b *Base) TransitionTo(name string) {
	b.next = name
}

// NextState returns the scheduled transition target, or empty if none.
func (b *Base) NextState() string {
	return b.next
}

// ClearNextState resets the transition slot.
func (b *Base) ClearNextState() {
	b.next = ""
}

// Update does nothing. States with per-tick logic shadow it.
func (b *Base) Update() {}

// Draw does nothing. States with visuals shadow it.
func (b *Base) Draw(*core.Surface) {}

// Cleanup does nothing. States holding resources shadow it.
func (b *Base) Cleanup() {}
