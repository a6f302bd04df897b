// Package app assembles and runs the shell. It loads and validates
// configuration, opens score storage, builds the screen states and
// their manager, and maps the outcome of a run to a process exit code.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/Starman12976/termarcade/internal/config"
	"github.com/Starman12976/termarcade/internal/core"
	"github.com/Starman12976/termarcade/internal/platform/tui"
	"github.com/Starman12976/termarcade/internal/state"
	"github.com/Starman12976/termarcade/internal/storage"
)

// Exit codes reported by Run.
const (
	ExitOK     = 0   // Quit through the terminal state
	ExitFault  = 1   // A state panicked or the terminal loop failed
	ExitSignal = 130 // Ended by an outside signal
)

// Options configures a Program.
type Options struct {
	// SettingsPath overrides the settings search chain when non-empty.
	SettingsPath string

	// ControlsPath overrides the controls search chain when non-empty.
	ControlsPath string

	// DBPath is the scores database location. Empty runs without storage.
	DBPath string

	// FPS overrides the configured frame rate when positive.
	FPS int

	// Seed fixes the RNG seed for reproducible sessions. 0 means
	// time-based.
	Seed int64

	// Logger receives shell logs. Defaults to log.Default().
	Logger *log.Logger
}

// Program owns everything one run needs: validated configuration, the
// score store, the state registry, and the terminal model.
type Program struct {
	settings  config.Settings
	controls  config.Controls
	config    core.RuntimeConfig
	store     *storage.Store
	manager   *state.Manager
	model     tui.Model
	logger    *log.Logger
	closeOnce sync.Once
}

// NewProgram loads and validates configuration and assembles the shell.
// A settings or controls file that exists but fails validation is fatal
// here: the program never starts on a bad configuration.
func NewProgram(opts Options) (*Program, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	settings, err := config.LoadSettings(opts.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	controls, err := config.LoadControls(opts.ControlsPath)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	if opts.FPS != 0 && (opts.FPS < config.MinFPS || opts.FPS > config.MaxFPS) {
		return nil, fmt.Errorf("app: fps %d out of range [%d, %d]", opts.FPS, config.MinFPS, config.MaxFPS)
	}

	// Fullscreen starts at the probed terminal size; the surface then
	// follows resize events. Fixed-size runs use the configured size.
	width, height := settings.Width(), settings.Height()
	if settings.Fullscreen {
		if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && w > 0 && h > 0 {
			width, height = w, h
		} else if width <= 0 || height <= 0 {
			def := core.DefaultConfig()
			width, height = def.ScreenW, def.ScreenH
		}
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   settings.FPS,
		Fullscreen: settings.Fullscreen,
		Seed:       opts.Seed,
	}
	if opts.FPS > 0 {
		cfg.TickRate = opts.FPS
	}

	// Storage is best-effort: the shell runs without scores if the
	// database cannot be opened.
	var store *storage.Store
	if opts.DBPath != "" {
		store, err = storage.Open(opts.DBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
			store = nil
		}
	}

	manager, err := buildManager(cfg, settings, controls, store, logger)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}

	return &Program{
		settings: settings,
		controls: controls,
		config:   cfg,
		store:    store,
		manager:  manager,
		model:    tui.NewModel(manager, cfg, settings.Background(), logger),
		logger:   logger,
	}, nil
}

// NewShellModel assembles a standalone shell model over shared
// configuration and storage. The SSH server uses it to build one model
// per session, sized to the session's terminal; the states and manager
// are per-session, the store is whatever the caller shares.
func NewShellModel(settings config.Settings, controls config.Controls, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (tui.Model, error) {
	manager, err := buildManager(cfg, settings, controls, store, logger)
	if err != nil {
		return tui.Model{}, err
	}
	return tui.NewModel(manager, cfg, settings.Background(), logger), nil
}

// buildManager constructs the screen states and registers them.
func buildManager(cfg core.RuntimeConfig, settings config.Settings, controls config.Controls, store *storage.Store, logger *log.Logger) (*state.Manager, error) {
	play, err := state.NewPlayState(cfg, controls, store)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	states := map[string]state.State{
		state.MenuName:   state.NewMenuState(settings.Title, controls),
		state.PlayName:   play,
		state.ScoresName: state.NewScoresState(cfg, controls, store),
	}

	manager, err := state.NewManager(logger, states, state.MenuName)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return manager, nil
}

// Run drives the shell until it stops and returns the process exit
// code: ExitOK for a quit through the terminal state, ExitFault when a
// state panicked or the terminal loop failed, ExitSignal when an
// outside signal ended the run. Resources are released before Run
// returns, on every path.
func (p *Program) Run(ctx context.Context) int {
	defer p.Close()

	p.logger.Info("starting",
		"title", p.settings.Title,
		"size", fmt.Sprintf("%dx%d", p.config.ScreenW, p.config.ScreenH),
		"fps", p.config.TickRate,
	)

	final, err := tui.Run(ctx, p.model)
	code := exitCode(final.Faulted(), err)
	switch {
	case code == ExitSignal:
		p.logger.Info("interrupted")
	case err != nil:
		p.logger.Error("terminal loop failed", "error", err)
	case code == ExitFault:
		p.logger.Error("stopped after state fault")
	default:
		p.logger.Info("goodbye")
	}
	return code
}

// exitCode maps a run outcome to a process exit code.
func exitCode(faulted bool, err error) int {
	switch {
	case err == nil:
		if faulted {
			return ExitFault
		}
		return ExitOK
	case errors.Is(err, tea.ErrProgramKilled), errors.Is(err, tea.ErrInterrupted):
		return ExitSignal
	default:
		return ExitFault
	}
}

// Close releases the program's resources: every state's cleanup runs
// and the score store is closed. Safe to call more than once; the
// release happens exactly once.
func (p *Program) Close() {
	p.closeOnce.Do(func() {
		p.manager.Cleanup()
		if p.store != nil {
			if err := p.store.Close(); err != nil {
				p.logger.Warn("could not close scores database", "error", err)
			}
		}
	})
}
