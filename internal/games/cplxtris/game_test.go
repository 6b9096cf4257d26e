package cplxtris

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/config"
	"github.com/vovakirdan/cplxtris/internal/core"
	"github.com/vovakirdan/cplxtris/internal/registry"
	"github.com/vovakirdan/cplxtris/internal/tetris"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

// fixed creates a started game whose pieces follow seq.
func fixed(mode Mode, seq ...tetris.Shape) *Game {
	g := newGame(mode)
	g.pickerFor = func(int64) tetris.Picker {
		return tetris.NewSequencePicker(seq...)
	}
	g.Reset(testConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	return core.InputFrame{Actions: actions}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDComplex} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
	assert.Equal(t, "Tetris", NewClassic().Title())
	assert.Equal(t, "Complex Tetris", NewComplex().Title())
}

func TestDeterminism(t *testing.T) {
	inputs := []core.InputFrame{
		frame(core.ActionLeft),
		frame(),
		frame(core.ActionRotate, core.ActionRight),
		frame(core.ActionHardDrop),
		frame(core.ActionDown, core.ActionDown),
		frame(core.ActionHardDrop),
	}

	run := func() Snapshot {
		g := NewComplex()
		g.Reset(testConfig())
		for i := range 300 {
			g.Step(inputs[i%len(inputs)])
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestAutoDrop(t *testing.T) {
	g := fixed(ModeClassic, tetris.ShapeT, tetris.ShapeI)
	require.Equal(t, 60, g.Snapshot().Interval)

	for range 59 {
		g.Step(frame())
	}
	assert.Equal(t, 0, g.state.Anchor.Y)

	g.Step(frame())
	assert.Equal(t, 1, g.state.Anchor.Y)
	assert.Equal(t, 0, g.Snapshot().DropTicks)
}

func TestPauseFreezesAutoDrop(t *testing.T) {
	g := fixed(ModeClassic, tetris.ShapeT, tetris.ShapeI)
	for range 30 {
		g.Step(frame())
	}
	before := g.Snapshot()

	g.Step(frame(core.ActionPause))
	require.True(t, g.State().Paused)
	assert.Equal(t, PhasePaused, g.Snapshot().Phase)

	for range 500 {
		g.Step(frame(core.ActionLeft, core.ActionHardDrop, core.ActionRotate))
	}
	paused := g.Snapshot()
	assert.Equal(t, before.DropTicks, paused.DropTicks)
	assert.Equal(t, before.State.Anchor, paused.State.Anchor)
	assert.Equal(t, before.State.Board, paused.State.Board)

	g.Step(frame(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Equal(t, before.DropTicks+1, g.Snapshot().DropTicks, "resume continues the count")
}

func TestActionsApplyInOrder(t *testing.T) {
	g := fixed(ModeClassic, tetris.ShapeT, tetris.ShapeI)

	g.Step(frame(core.ActionLeft, core.ActionLeft, core.ActionDown))
	assert.Equal(t, tetris.Point{X: 3, Y: 1}, g.state.Anchor)
}

func TestClassicRotate(t *testing.T) {
	g := fixed(ModeClassic, tetris.ShapeT, tetris.ShapeI)

	g.Step(frame(core.ActionSlot2, core.ActionRotate))

	assert.Equal(t, tetris.ShapeT.Template().Rotate(), g.state.Piece)
	assert.Equal(t, cnum.FuncRotation, g.Transform(), "slots are ignored in classic mode")
}

func TestComplexTransform(t *testing.T) {
	g := fixed(ModeComplex, tetris.ShapeT, tetris.ShapeI)

	g.Step(frame(core.ActionSlot2))
	require.Equal(t, cnum.FuncSquare, g.Transform())

	g.Step(frame(core.ActionRotate))
	assert.Equal(t, tetris.ShapeT.Template().Transform(cnum.FuncSquare), g.state.Piece)
	assert.Equal(t, "square", g.Snapshot().Transform)

	e, ok := g.plot.Last()
	require.True(t, ok)
	assert.Equal(t, g.state.Piece, e.Piece, "piece plot follows the active piece")
}

func TestHardDropAndGameOver(t *testing.T) {
	g := fixed(ModeClassic, tetris.ShapeO)

	g.Step(frame(core.ActionHardDrop))
	assert.Equal(t, 4, g.state.Board.Filled())

	g.Step(frame(core.ActionRestart))
	assert.Equal(t, 4, g.state.Board.Filled(), "restart is only accepted after game over")

	for range 50 {
		if g.State().GameOver {
			break
		}
		g.Step(frame(core.ActionHardDrop))
	}
	require.True(t, g.State().GameOver)
	assert.Equal(t, PhaseGameOver, g.Snapshot().Phase)

	over := g.Snapshot()
	for range 200 {
		g.Step(frame(core.ActionLeft, core.ActionDown))
	}
	assert.Equal(t, over.State, g.Snapshot().State)

	g.Step(frame(core.ActionRestart))
	assert.False(t, g.State().GameOver)
	assert.Equal(t, tetris.Board{}, g.state.Board)
}

func TestControlsListEveryAcceptedKey(t *testing.T) {
	for _, g := range []*Game{NewClassic(), NewComplex()} {
		hints := g.Controls()
		for _, want := range []string{"Move", "Drop", "Hard drop", "Pause", "R: Restart", "Quit"} {
			assert.Contains(t, hints, want, g.ID())
		}
	}
	assert.Contains(t, NewComplex().Controls(), "1-4: Function")
}

func TestIntervalFollowsLevel(t *testing.T) {
	g := fixed(ModeClassic, tetris.ShapeT)

	s := g.state
	s.Lines = 50
	s.Level = 5
	g.install(s)
	assert.Equal(t, 30, g.Snapshot().Interval)

	s.Lines = 200
	s.Level = 20
	g.install(s)
	assert.Equal(t, 6, g.Snapshot().Interval)
}

func TestTooSmall(t *testing.T) {
	g := NewClassic()
	cfg := testConfig()
	cfg.ScreenW = 40
	g.Reset(cfg)

	assert.True(t, g.State().Paused)
	before := g.Snapshot()
	g.Step(frame(core.ActionHardDrop))
	assert.Equal(t, before.State, g.Snapshot().State)
	assert.Equal(t, PhasePausedSmall, g.Snapshot().Phase)

	screen := core.NewScreen(40, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRender(t *testing.T) {
	g := fixed(ModeComplex, tetris.ShapeT, tetris.ShapeI)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Complex Tetris")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Next:")
	assert.Contains(t, out, "f(z) = i·z")
	assert.Contains(t, out, "░", "ghost piece")

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	classic := fixed(ModeClassic, tetris.ShapeI)
	classic.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Rotate: z → i·z"))
}

func TestSetSettings(t *testing.T) {
	defer SetSettings(DefaultSettings())

	SetSettings(Settings{Timing: tetris.DefaultTiming, DefaultTransform: cnum.FuncIdentity})
	assert.Equal(t, cnum.FuncRotation, CurrentSettings().DefaultTransform)

	SetSettings(Settings{Timing: tetris.DefaultTiming, DefaultTransform: cnum.FuncExp})
	g := NewComplex()
	g.Reset(testConfig())
	assert.Equal(t, cnum.FuncExp, g.Transform())
	assert.False(t, g.settings.Ghost)
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	assert.Equal(t, DefaultSettings(), SettingsFromConfig(cfg))

	cfg.Complex.DefaultTransform = "reciprocal"
	cfg.Gameplay.GhostPiece = false
	config.ApplyPreset(&cfg, config.DifficultyHard)
	s := SettingsFromConfig(cfg)
	assert.Equal(t, cnum.FuncReciprocal, s.DefaultTransform)
	assert.False(t, s.Ghost)
	assert.Equal(t, 600*time.Millisecond, s.Timing.Base)

	cfg.Complex.DefaultTransform = "sinh"
	assert.Equal(t, cnum.FuncRotation, SettingsFromConfig(cfg).DefaultTransform)
}

func TestResize(t *testing.T) {
	var _ registry.Resizer = (*Game)(nil)
	var _ registry.Controller = (*Game)(nil)

	g := fixed(ModeClassic, tetris.ShapeT)
	g.Resize(30, 10)
	assert.Equal(t, PhasePausedSmall, g.Snapshot().Phase)

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, tetris.SpawnAnchor, g.state.Anchor)

	g.Resize(80, 24)
	g.Step(frame(core.ActionLeft))
	assert.Equal(t, tetris.SpawnAnchor.X-1, g.state.Anchor.X)
}
