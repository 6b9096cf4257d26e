package visualizer

// Animation advances the morph progress from 0 to 1 over a fixed number of frames.
type Animation struct {
	progress float64
	step     float64
	running  bool
}

// NewAnimation creates a finished animation that completes in frames frames
// once started.
func NewAnimation(frames int) *Animation {
	if frames < 1 {
		frames = 1
	}
	return &Animation{progress: 1, step: 1 / float64(frames)}
}

// Start rewinds to the untransformed plane.
func (a *Animation) Start() {
	a.progress = 0
	a.running = true
}

// Tick advances one frame and reports whether the animation is still running.
func (a *Animation) Tick() bool {
	if !a.running {
		return false
	}
	a.progress += a.step
	if a.progress >= 1 {
		a.progress = 1
		a.running = false
	}
	return a.running
}

// Progress returns the current position in [0, 1].
func (a *Animation) Progress() float64 {
	return a.progress
}

// Running reports whether Tick still has frames to play.
func (a *Animation) Running() bool {
	return a.running
}
