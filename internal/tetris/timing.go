package tetris

import "time"

// Timing controls how fast pieces fall as the level rises.
type Timing struct {
	Base time.Duration // interval at level 0
	Step time.Duration // reduction per level
	Min  time.Duration // floor
}

// DefaultTiming is 1s at level 0, 100ms faster per level, never below 100ms.
var DefaultTiming = Timing{
	Base: time.Second,
	Step: 100 * time.Millisecond,
	Min:  100 * time.Millisecond,
}

// DropInterval returns the auto-drop interval for level.
func (t Timing) DropInterval(level int) time.Duration {
	d := t.Base - time.Duration(level)*t.Step
	return max(d, t.Min)
}
