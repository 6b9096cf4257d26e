package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the frontend tells a game when it starts one.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // simulation ticks per second
	Seed     int64 // 0 lets the frontend pick a time-based seed
}

// DefaultConfig is an 80x24 terminal at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// Normalized replaces a non-positive tick rate with DefaultTickRate and
// negative screen sizes with zero.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	c.ScreenW = max(c.ScreenW, 0)
	c.ScreenH = max(c.ScreenH, 0)
	return c
}

// GameState is the summary a game reports to the frontend after each step.
type GameState struct {
	Score    int
	Lines    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by a game after each simulation tick.
type StepResult struct {
	State GameState
}
