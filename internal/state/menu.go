package state

import (
	"github.com/Starman12976/termarcade/internal/config"
	"github.com/Starman12976/termarcade/internal/core"
)

// MenuName is the registry key the menu state is conventionally bound to.
const MenuName = "menu"

// menuItem is one selectable row: its label and the transition target
// activating it schedules.
type menuItem struct {
	label  string
	target string
}

// MenuState is the entry screen: a title and a small list of choices.
// Arrow keys or the mouse move the selection, select activates it.
type MenuState struct {
	Base

	title    string
	controls config.Controls
	items    []menuItem
	selected int

	// itemRects holds each item's on-surface rectangle from the last
	// draw, for mouse hit testing.
	itemRects []core.Rect
}

var _ State = (*MenuState)(nil)

// NewMenuState creates the menu with the standard choices.
func NewMenuState(title string, controls config.Controls) *MenuState {
	m := &MenuState{
		title:    title,
		controls: controls,
		items: []menuItem{
			{label: "Play", target: PlayName},
			{label: "High Scores", target: ScoresName},
			{label: "Quit", target: QuitName},
		},
	}
	m.itemRects = make([]core.Rect, len(m.items))

	m.On(core.KindKeyPress, m.handleKey)
	m.On(core.KindMouseDown, m.handleMouseDown)
	m.On(core.KindMouseMotion, m.handleMouseMotion)
	m.On(core.KindMouseWheel, m.handleMouseWheel)
	return m
}

func (m *MenuState) handleKey(ev core.Event) {
	switch {
	case m.controls.Is(ev.Key, "up"):
		m.selected = (m.selected + len(m.items) - 1) % len(m.items)
	case m.controls.Is(ev.Key, "down"):
		m.selected = (m.selected + 1) % len(m.items)
	case m.controls.Is(ev.Key, "select"):
		m.activate()
	case m.controls.Is(ev.Key, "back"), m.controls.Is(ev.Key, "quit"):
		m.TransitionTo(QuitName)
	}
}

func (m *MenuState) handleMouseDown(ev core.Event) {
	if ev.Button != core.ButtonLeft {
		return
	}
	if i, ok := m.itemAt(ev.X, ev.Y); ok {
		m.selected = i
		m.activate()
	}
}

func (m *MenuState) handleMouseMotion(ev core.Event) {
	if i, ok := m.itemAt(ev.X, ev.Y); ok {
		m.selected = i
	}
}

func (m *MenuState) handleMouseWheel(ev core.Event) {
	if ev.Delta < 0 {
		m.selected = core.Max(m.selected-1, 0)
	} else if ev.Delta > 0 {
		m.selected = core.Min(m.selected+1, len(m.items)-1)
	}
}

// itemAt returns the index of the item under (x, y), using the layout
// of the last draw.
func (m *MenuState) itemAt(x, y int) (int, bool) {
	for i, r := range m.itemRects {
		if !r.Empty() && r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// activate schedules the transition for the selected item.
func (m *MenuState) activate() {
	m.TransitionTo(m.items[m.selected].target)
}

// Selected returns the index of the highlighted item.
func (m *MenuState) Selected() int {
	return m.selected
}

// Draw renders the title and the choice list.
func (m *MenuState) Draw(s *core.Surface) {
	titleY := s.Height() / 4
	s.DrawTextCentered(titleY, m.title, core.ColorBrightCyan)
	s.DrawTextCentered(titleY+1, "────────────", core.ColorGray)

	startY := titleY + 3
	for i, item := range m.items {
		label := "  " + item.label + "  "
		color := core.ColorWhite
		if i == m.selected {
			label = "> " + item.label + " <"
			color = core.ColorBrightYellow
		}

		y := startY + i*2
		x := (s.Width() - len([]rune(label))) / 2
		s.DrawText(x, y, label, color)
		m.itemRects[i] = core.NewRect(x, y, len([]rune(label)), 1)
	}

	hint := "arrows move · " + m.controls.Key("select") + " selects · " + m.controls.Key("quit") + " quits"
	s.DrawTextCentered(s.Height()-2, hint, core.ColorGray)
}
