package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches the
// embedded defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gameplay: GameplayConfig{
			GhostPiece: true,
		},
		Timing: TimingConfig{
			BaseDropMs: 1000,
			StepMs:     100,
			MinDropMs:  100,
		},
		Complex: ComplexConfig{
			DefaultTransform: "rotation",
		},
		Visualizer: VisualizerConfig{
			Range:         3.0,
			Step:          0.2,
			ShowMagnitude: true,
			ShowPhase:     true,
			Frames:        50,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
