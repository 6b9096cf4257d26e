package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// Describe returns a one-line summary for menus.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "slower drops, speeds up with level"
	case DifficultyHard:
		return "faster drops from the start"
	case DifficultyFixed:
		return "constant speed at every level"
	default:
		return "standard speed, speeds up with level"
	}
}

// ParsePreset maps a name to a preset. The empty string is normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if p == "" {
		return DifficultyNormal, nil
	}
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// SpeedFactorForPreset returns the multiplier applied to the base interval.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables the per-level speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset scales the timing in cfg for preset and records it.
// The interval never drops below the configured minimum.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
	if IsFixedPreset(preset) {
		cfg.Timing.StepMs = 0
		return
	}
	base := int(math.Round(float64(cfg.Timing.BaseDropMs) * SpeedFactorForPreset(preset)))
	cfg.Timing.BaseDropMs = max(base, cfg.Timing.MinDropMs)
}
