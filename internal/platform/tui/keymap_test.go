package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Starman12976/termarcade/internal/core"
)

func TestMapKey(t *testing.T) {
	em := NewEventMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Event
	}{
		{"rune key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.KeyEvent("a")},
		{"named key", tea.KeyMsg{Type: tea.KeyUp}, core.KeyEvent("up")},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEvent("enter")},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEvent("esc")},
		{"ctrl+c becomes quit", tea.KeyMsg{Type: tea.KeyCtrlC}, core.QuitEvent()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := em.MapKey(tt.msg)
			if got != tt.want {
				t.Errorf("MapKey(%q) = %+v, want %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	em := NewEventMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Event
		ok   bool
	}{
		{
			name: "left press",
			msg:  tea.MouseMsg{X: 3, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want: core.Event{Kind: core.KindMouseDown, X: 3, Y: 5, Button: core.ButtonLeft},
			ok:   true,
		},
		{
			name: "right release",
			msg:  tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight},
			want: core.Event{Kind: core.KindMouseUp, X: 1, Y: 2, Button: core.ButtonRight},
			ok:   true,
		},
		{
			name: "middle press",
			msg:  tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle},
			want: core.Event{Kind: core.KindMouseDown, X: 9, Y: 9, Button: core.ButtonMiddle},
			ok:   true,
		},
		{
			name: "motion",
			msg:  tea.MouseMsg{X: 7, Y: 8, Action: tea.MouseActionMotion},
			want: core.Event{Kind: core.KindMouseMotion, X: 7, Y: 8},
			ok:   true,
		},
		{
			name: "wheel up scrolls up",
			msg:  tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			want: core.Event{Kind: core.KindMouseWheel, X: 2, Y: 2, Delta: -1},
			ok:   true,
		},
		{
			name: "wheel down scrolls down",
			msg:  tea.MouseMsg{X: 4, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
			want: core.Event{Kind: core.KindMouseWheel, X: 4, Y: 4, Delta: 1},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := em.MapMouse(tt.msg)
			if ok != tt.ok {
				t.Fatalf("MapMouse() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("MapMouse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMapResize(t *testing.T) {
	em := NewEventMapper()

	got := em.MapResize(tea.WindowSizeMsg{Width: 120, Height: 40})
	want := core.Event{Kind: core.KindResize, Width: 120, Height: 40}
	if got != want {
		t.Errorf("MapResize() = %+v, want %+v", got, want)
	}
}
