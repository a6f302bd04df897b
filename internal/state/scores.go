package state

import (
	"fmt"

	"github.com/Starman12976/termarcade/internal/config"
	"github.com/Starman12976/termarcade/internal/core"
	"github.com/Starman12976/termarcade/internal/storage"
)

// ScoresName is the registry key the scores state is conventionally bound to.
const ScoresName = "scores"

// scoresShown caps how many entries the screen loads from storage.
const scoresShown = 100

// ScoresState shows the recorded high scores for the play state.
// The list refreshes itself periodically, so a run finished moments
// ago appears without leaving the screen.
type ScoresState struct {
	Base

	controls config.Controls
	store    *storage.Store
	tickRate int

	entries   []storage.ScoreEntry
	loadErr   error
	scroll    int
	refreshIn int
}

var _ State = (*ScoresState)(nil)

// NewScoresState creates the high score screen.
func NewScoresState(cfg core.RuntimeConfig, controls config.Controls, store *storage.Store) *ScoresState {
	s := &ScoresState{
		controls: controls,
		store:    store,
		tickRate: cfg.TickRate,
	}

	s.On(core.KindKeyPress, s.handleKey)
	s.On(core.KindMouseWheel, s.handleMouseWheel)
	return s
}

func (s *ScoresState) handleKey(ev core.Event) {
	switch {
	case s.controls.Is(ev.Key, "back"):
		s.TransitionTo(MenuName)
	case s.controls.Is(ev.Key, "quit"):
		s.TransitionTo(QuitName)
	case s.controls.Is(ev.Key, "up"):
		s.scrollBy(-1)
	case s.controls.Is(ev.Key, "down"):
		s.scrollBy(1)
	}
}

func (s *ScoresState) handleMouseWheel(ev core.Event) {
	s.scrollBy(ev.Delta)
}

func (s *ScoresState) scrollBy(delta int) {
	s.scroll = core.Clamp(s.scroll+delta, 0, core.Max(len(s.entries)-1, 0))
}

// Update reloads the list when the refresh timer runs out.
func (s *ScoresState) Update() {
	s.refreshIn--
	if s.refreshIn > 0 {
		return
	}
	s.refreshIn = 2 * core.Max(s.tickRate, 1)
	s.refresh()
}

func (s *ScoresState) refresh() {
	if s.store == nil {
		return
	}
	entries, err := s.store.TopScores(PlayName, scoresShown)
	if err != nil {
		s.loadErr = err
		return
	}
	s.entries = entries
	s.loadErr = nil
	s.scrollBy(0)
}

// Draw renders the score table.
func (s *ScoresState) Draw(surf *core.Surface) {
	surf.DrawTextCentered(1, "HIGH SCORES", core.ColorBrightCyan)

	switch {
	case s.store == nil:
		surf.DrawTextCentered(surf.Height()/2, "score storage is disabled", core.ColorGray)
	case s.loadErr != nil:
		surf.DrawTextCentered(surf.Height()/2, "could not load scores", core.ColorBrightRed)
	case len(s.entries) == 0:
		surf.DrawTextCentered(surf.Height()/2, "no scores yet, go play a round", core.ColorGray)
	default:
		s.drawTable(surf)
	}

	hint := s.controls.Key("back") + " returns to menu"
	surf.DrawTextCentered(surf.Height()-2, hint, core.ColorGray)
}

func (s *ScoresState) drawTable(surf *core.Surface) {
	left := core.Max((surf.Width()-34)/2, 0)
	surf.DrawText(left, 3, "   #  SCORE   TIME  DATE", core.ColorWhite)
	surf.DrawHLine(left, 4, 34, '─', core.ColorGray)

	visible := core.Max(surf.Height()-8, 1)
	for i := 0; i < visible; i++ {
		idx := s.scroll + i
		if idx >= len(s.entries) {
			break
		}
		e := s.entries[idx]

		color := core.ColorWhite
		if idx == 0 {
			color = core.ColorBrightYellow
		}
		line := fmt.Sprintf("%4d  %5d  %4ds  %s",
			idx+1, e.Score, e.DurationSecs, e.CreatedAt.Format("2006-01-02"))
		surf.DrawText(left, 5+i, line, color)
	}

	if len(s.entries) > visible {
		pos := fmt.Sprintf("%d-%d of %d", s.scroll+1,
			core.Min(s.scroll+visible, len(s.entries)), len(s.entries))
		surf.DrawTextCentered(surf.Height()-3, pos, core.ColorGray)
	}
}
