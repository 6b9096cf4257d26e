// Package config provides YAML-based configuration loading and difficulty
// presets for the game and the function visualizer.
package config

import (
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Timing     TimingConfig     `yaml:"timing"`
	Complex    ComplexConfig    `yaml:"complex"`
	Visualizer VisualizerConfig `yaml:"visualizer"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GameplayConfig holds rendering and rule toggles.
type GameplayConfig struct {
	GhostPiece bool `yaml:"ghost_piece"` // show where a hard drop would land
}

// TimingConfig defines the auto-drop interval curve in milliseconds.
type TimingConfig struct {
	BaseDropMs int `yaml:"base_drop_ms"` // interval at level 0
	StepMs     int `yaml:"step_ms"`      // reduction per level
	MinDropMs  int `yaml:"min_drop_ms"`  // lower bound
}

// ComplexConfig configures the transform mode.
type ComplexConfig struct {
	DefaultTransform string `yaml:"default_transform"` // rotation, square, exp or reciprocal
}

// VisualizerConfig configures the function plot.
type VisualizerConfig struct {
	Range         float64 `yaml:"range"`
	Step          float64 `yaml:"step"`
	ShowMagnitude bool    `yaml:"show_magnitude"`
	ShowPhase     bool    `yaml:"show_phase"`
	Frames        int     `yaml:"frames"` // animation length
}

// DifficultyConfig selects a preset applied on top of the timing values.
type DifficultyConfig struct {
	Preset string `yaml:"preset"`
}

// Base returns the level 0 interval.
func (t TimingConfig) Base() time.Duration {
	return time.Duration(t.BaseDropMs) * time.Millisecond
}

// Step returns the per-level reduction.
func (t TimingConfig) Step() time.Duration {
	return time.Duration(t.StepMs) * time.Millisecond
}

// Min returns the lower bound.
func (t TimingConfig) Min() time.Duration {
	return time.Duration(t.MinDropMs) * time.Millisecond
}

// Validate reports the first value that cannot drive the game.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Timing.BaseDropMs <= 0:
		return fmt.Errorf("timing.base_drop_ms must be positive, got %d", c.Timing.BaseDropMs)
	case c.Timing.MinDropMs <= 0:
		return fmt.Errorf("timing.min_drop_ms must be positive, got %d", c.Timing.MinDropMs)
	case c.Timing.StepMs < 0:
		return fmt.Errorf("timing.step_ms must not be negative, got %d", c.Timing.StepMs)
	case c.Visualizer.Range <= 0:
		return fmt.Errorf("visualizer.range must be positive, got %g", c.Visualizer.Range)
	case c.Visualizer.Step <= 0 || c.Visualizer.Step > c.Visualizer.Range:
		return fmt.Errorf("visualizer.step must be in (0, range], got %g", c.Visualizer.Step)
	case c.Visualizer.Frames < 1:
		return fmt.Errorf("visualizer.frames must be at least 1, got %d", c.Visualizer.Frames)
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(c.Difficulty.Preset); err != nil {
			return err
		}
	}
	return nil
}
