// Package cplxtris runs the tetris state machine as a registered game.
// It turns input frames into state machine commands, drives auto-drop from
// the tick counter and renders the board, HUD and piece plot.
package cplxtris

import (
	"time"

	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/config"
	"github.com/vovakirdan/cplxtris/internal/core"
	"github.com/vovakirdan/cplxtris/internal/registry"
	"github.com/vovakirdan/cplxtris/internal/tetris"
	"github.com/vovakirdan/cplxtris/internal/visualizer"
)

// Mode selects how the rotate key behaves.
type Mode string

const (
	ModeClassic Mode = "classic" // quarter turn, O exempt, no kicks
	ModeComplex Mode = "complex" // selected complex transform with kicks
)

// Registry IDs.
const (
	IDClassic = "tetris"
	IDComplex = "tetris_complex"
)

// Settings are the tunables loaded from configuration.
type Settings struct {
	Timing           tetris.Timing
	Ghost            bool
	DefaultTransform cnum.Func
}

// DefaultSettings returns the built-in tunables.
func DefaultSettings() Settings {
	return Settings{
		Timing:           tetris.DefaultTiming,
		Ghost:            true,
		DefaultTransform: cnum.FuncRotation,
	}
}

// SettingsFromConfig converts loaded configuration into game settings.
// Unknown transform names fall back to rotation.
func SettingsFromConfig(c config.TetrisConfig) Settings {
	f := cnum.ParseFunc(c.Complex.DefaultTransform)
	if f == cnum.FuncIdentity {
		f = cnum.FuncRotation
	}
	return Settings{
		Timing: tetris.Timing{
			Base: c.Timing.Base(),
			Step: c.Timing.Step(),
			Min:  c.Timing.Min(),
		},
		Ghost:            c.Gameplay.GhostPiece,
		DefaultTransform: f,
	}
}

// Package-level settings used by registry factories.
var settings = DefaultSettings()

// SetSettings replaces the settings used by games created afterwards.
func SetSettings(s Settings) {
	if s.DefaultTransform == cnum.FuncIdentity {
		s.DefaultTransform = cnum.FuncRotation
	}
	settings = s
}

// CurrentSettings returns the settings new games will use.
func CurrentSettings() Settings {
	return settings
}

// Game implements registry.Game on top of tetris.Machine.
type Game struct {
	mode      Mode
	settings  Settings
	pickerFor func(seed int64) tetris.Picker

	machine   *tetris.Machine
	plot      *visualizer.PiecePlot
	state     tetris.State
	transform cnum.Func

	tick      uint64
	tickRate  int
	dropTicks int // ticks since the last auto-drop
	interval  int // ticks between auto-drops at the current level

	screenW  int
	screenH  int
	tooSmall bool
}

// NewClassic creates a game using canonical rotation.
func NewClassic() *Game {
	return newGame(ModeClassic)
}

// NewComplex creates a game using complex transforms.
func NewComplex() *Game {
	return newGame(ModeComplex)
}

func newGame(mode Mode) *Game {
	return &Game{
		mode:     mode,
		settings: settings,
		pickerFor: func(seed int64) tetris.Picker {
			return tetris.NewRandomPicker(seed)
		},
	}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
	registry.Register(IDComplex, func() registry.Game {
		return NewComplex()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeComplex {
		return IDComplex
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeComplex {
		return "Complex Tetris"
	}
	return "Tetris"
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	cfg = cfg.Normalized()
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	g.plot = visualizer.NewPiecePlot()
	g.machine = tetris.NewMachine(g.pickerFor(cfg.Seed))
	g.machine.SetObserver(g.plot)
	g.transform = g.settings.DefaultTransform
	g.tick = 0
	g.install(g.machine.NewGame())
	g.dropTicks = 0
}

// Resize records a new terminal size. Play is suspended while the window
// is too small and resumes where it left off once it fits again.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minWidth || g.screenH < minHeight
}

// Step advances one tick: queued actions are applied in order, then the
// auto-drop counter advances unless the game is paused or over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		g.handle(a)
	}

	if !g.state.Paused && !g.state.GameOver {
		g.dropTicks++
		if g.dropTicks >= g.interval {
			g.dropTicks = 0
			g.apply(tetris.Command{Kind: tetris.CmdSoftDrop})
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handle(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.apply(tetris.Command{Kind: tetris.CmdMoveLeft})
	case core.ActionRight:
		g.apply(tetris.Command{Kind: tetris.CmdMoveRight})
	case core.ActionDown:
		g.apply(tetris.Command{Kind: tetris.CmdSoftDrop})
	case core.ActionHardDrop:
		g.apply(tetris.Command{Kind: tetris.CmdHardDrop})
	case core.ActionRotate:
		if g.mode == ModeComplex {
			g.apply(tetris.Command{Kind: tetris.CmdTransform, Func: g.transform})
		} else {
			g.apply(tetris.Command{Kind: tetris.CmdRotate})
		}
	case core.ActionSlot1, core.ActionSlot2, core.ActionSlot3, core.ActionSlot4:
		if g.mode == ModeComplex {
			g.transform = cnum.Funcs[int(a-core.ActionSlot1)]
		}
	case core.ActionPause:
		g.apply(tetris.Command{Kind: tetris.CmdPause})
	case core.ActionRestart:
		if g.state.GameOver {
			g.apply(tetris.Command{Kind: tetris.CmdRestart})
			g.dropTicks = 0
		}
	}
}

// apply runs one command and installs the resulting state.
func (g *Game) apply(c tetris.Command) {
	g.install(g.machine.Apply(g.state, c))
}

func (g *Game) install(s tetris.State) {
	g.state = s
	g.interval = g.ticksFor(g.settings.Timing.DropInterval(s.Level))
}

func (g *Game) ticksFor(d time.Duration) int {
	return max(1, int(d*time.Duration(g.tickRate)/time.Second))
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Lines:    g.state.Lines,
		Level:    g.state.Level,
		GameOver: g.state.GameOver,
		Paused:   g.state.Paused || g.tooSmall,
	}
}

// Transform returns the function applied by the rotate key in complex mode.
func (g *Game) Transform() cnum.Func {
	return g.transform
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.mode == ModeComplex {
		return "←/→: Move | ↓: Drop | ↑/Space: Transform | 1-4: Function | Enter: Hard drop | P: Pause | R: Restart | Q: Quit"
	}
	return "←/→: Move | ↓: Drop | ↑/Space: Rotate | Enter: Hard drop | P: Pause | R: Restart | Q: Quit"
}
