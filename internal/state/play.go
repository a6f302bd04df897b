package state

import (
	_ "embed"
	"fmt"
	"math/rand"
	"time"

	"github.com/Starman12976/termarcade/internal/config"
	"github.com/Starman12976/termarcade/internal/core"
	"github.com/Starman12976/termarcade/internal/sprite"
	"github.com/Starman12976/termarcade/internal/storage"
)

// PlayName is the registry key the play state is conventionally bound to.
const PlayName = "play"

//go:embed assets/sprites.txt
var spriteSheet string

// rockSpawn bounds the random delay between rock spawns, in ticks
// relative to the tick rate (1x to 3x a second).
const (
	rockSpawnMin = 1
	rockSpawnMax = 3
)

// PlayState is the playable screen: steer the ship with the arrow keys
// and dodge the rocks drifting in from the right. Score grows with
// survival time and every rock that passes by.
type PlayState struct {
	Base

	controls config.Controls
	store    *storage.Store
	rng      *rand.Rand

	ship     *sprite.Frame
	rock     *sprite.Frame
	shipMask *sprite.Mask
	rockMask *sprite.Mask

	fieldW, fieldH int
	tickRate       int

	shipX, shipY int
	rocks        []core.Rect
	ticks        int
	score        int
	spawnIn      int
	gameOver     bool
	scoreSaved   bool
}

var _ State = (*PlayState)(nil)

// NewPlayState creates the play screen from the embedded sprite sheet.
func NewPlayState(cfg core.RuntimeConfig, controls config.Controls, store *storage.Store) (*PlayState, error) {
	sheet, err := sprite.ParseSheet(spriteSheet, 4, 3, []string{"ship", "rock"})
	if err != nil {
		return nil, fmt.Errorf("state: bad sprite sheet: %w", err)
	}

	ship, _ := sheet.Frame("ship")
	rock, _ := sheet.Frame("rock")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := &PlayState{
		controls: controls,
		store:    store,
		rng:      rand.New(rand.NewSource(seed)),
		ship:     ship,
		rock:     rock,
		shipMask: ship.Mask(),
		rockMask: rock.Mask(),
		fieldW:   cfg.ScreenW,
		fieldH:   cfg.ScreenH,
		tickRate: cfg.TickRate,
	}
	p.reset()

	p.On(core.KindKeyPress, p.handleKey)
	p.On(core.KindResize, p.handleResize)
	return p, nil
}

// reset starts a fresh run.
func (p *PlayState) reset() {
	p.shipX = 2
	p.shipY = (p.fieldH - p.ship.Height()) / 2
	p.rocks = p.rocks[:0]
	p.ticks = 0
	p.score = 0
	p.spawnIn = p.tickRate
	p.gameOver = false
	p.scoreSaved = false
}

func (p *PlayState) handleKey(ev core.Event) {
	switch {
	case p.controls.Is(ev.Key, "quit"):
		p.TransitionTo(QuitName)
	case p.controls.Is(ev.Key, "back"):
		p.TransitionTo(MenuName)
	case p.controls.Is(ev.Key, "restart"):
		if p.gameOver {
			p.reset()
		}
	case p.gameOver:
		// Movement is dead after a crash
	case p.controls.Is(ev.Key, "up"):
		p.shipY--
	case p.controls.Is(ev.Key, "down"):
		p.shipY++
	case p.controls.Is(ev.Key, "left"):
		p.shipX--
	case p.controls.Is(ev.Key, "right"):
		p.shipX++
	}
}

func (p *PlayState) handleResize(ev core.Event) {
	p.fieldW = ev.Width
	p.fieldH = ev.Height
}

// Update advances the run by one tick: clamp the ship, spawn and move
// rocks, score passed rocks, and check for a crash.
func (p *PlayState) Update() {
	if p.gameOver {
		return
	}

	p.ticks++
	p.shipX = core.Clamp(p.shipX, 0, core.Max(p.fieldW-p.ship.Width(), 0))
	p.shipY = core.Clamp(p.shipY, 1, core.Max(p.fieldH-p.ship.Height(), 1))

	// One point per second survived
	if p.ticks%core.Max(p.tickRate, 1) == 0 {
		p.score++
	}

	p.spawnIn--
	if p.spawnIn <= 0 {
		p.spawnRock()
	}

	// Rocks drift left every other tick
	if p.ticks%2 == 0 {
		p.moveRocks()
	}

	for _, r := range p.rocks {
		if p.shipMask.Overlap(p.rockMask, r.X-p.shipX, r.Y-p.shipY) {
			p.crash()
			return
		}
	}
}

func (p *PlayState) spawnRock() {
	maxY := core.Max(p.fieldH-p.rock.Height()-1, 1)
	y := 1
	if maxY > 1 {
		y = 1 + p.rng.Intn(maxY)
	}
	p.rocks = append(p.rocks, p.rock.Bounds(p.fieldW, y))

	span := (rockSpawnMax - rockSpawnMin) * p.tickRate
	p.spawnIn = rockSpawnMin*p.tickRate + p.rng.Intn(core.Max(span, 1))
}

func (p *PlayState) moveRocks() {
	kept := p.rocks[:0]
	for _, r := range p.rocks {
		r.X--
		if r.Right() <= 0 {
			// Cleared off the left edge
			p.score += 5
			continue
		}
		kept = append(kept, r)
	}
	p.rocks = kept
}

// crash ends the run and records the score.
func (p *PlayState) crash() {
	p.gameOver = true

	if p.store != nil && !p.scoreSaved && p.score > 0 {
		duration := time.Duration(p.ticks) * time.Second / time.Duration(core.Max(p.tickRate, 1))
		//nolint:errcheck // Best-effort save
		p.store.SaveScore(PlayName, p.score, duration)
		p.scoreSaved = true
	}
}

// Score returns the current run's score.
func (p *PlayState) Score() int {
	return p.score
}

// GameOver reports whether the current run has ended.
func (p *PlayState) GameOver() bool {
	return p.gameOver
}

// Draw renders the playfield.
func (p *PlayState) Draw(s *core.Surface) {
	s.DrawText(1, 0, fmt.Sprintf("SCORE %d", p.score), core.ColorWhite)

	for _, r := range p.rocks {
		p.rock.Draw(s, r.X, r.Y, core.ColorYellow)
	}
	p.ship.Draw(s, p.shipX, p.shipY, core.ColorBrightCyan)

	if p.gameOver {
		mid := s.Height() / 2
		s.DrawTextCentered(mid-1, "GAME OVER", core.ColorBrightRed)
		s.DrawTextCentered(mid, fmt.Sprintf("final score %d", p.score), core.ColorWhite)
		hint := p.controls.Key("restart") + " restarts · " + p.controls.Key("back") + " returns to menu"
		s.DrawTextCentered(mid+2, hint, core.ColorGray)
	}
}
