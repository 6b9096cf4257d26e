package cplxtris

import "github.com/vovakirdan/cplxtris/internal/tetris"

// Phase is the coarse status of a game.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhasePaused      Phase = "paused"
	PhaseGameOver    Phase = "game_over"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Transform string
	State     tetris.State
	DropTicks int
	Interval  int // ticks between auto-drops
	Phase     Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.state.GameOver:
		phase = PhaseGameOver
	case g.state.Paused:
		phase = PhasePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Transform: g.transform.String(),
		State:     g.state,
		DropTicks: g.dropTicks,
		Interval:  g.interval,
		Phase:     phase,
	}
}
