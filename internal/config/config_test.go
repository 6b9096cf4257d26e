package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultTetrisConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mine.yaml", `
timing:
  base_drop_ms: 800
complex:
  default_transform: exp
`)

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Timing.BaseDropMs)
	assert.Equal(t, 100, cfg.Timing.StepMs, "unset keys keep their defaults")
	assert.Equal(t, "exp", cfg.Complex.DefaultTransform)
	assert.True(t, cfg.Gameplay.GhostPiece)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "cannot read")

	broken := writeFile(t, dir, "broken.yaml", "timing: [unterminated")
	_, err = LoadTetris(broken)
	assert.ErrorContains(t, err, "cannot parse")

	invalid := writeFile(t, dir, "invalid.yaml", "timing:\n  min_drop_ms: 0\n")
	_, err = LoadTetris(invalid)
	assert.ErrorContains(t, err, "min_drop_ms")
}

func TestLoadFirstSkipsBrokenCandidates(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "a.yaml", "visualizer:\n  step: -1\n")
	good := writeFile(t, dir, "b.yaml", "visualizer:\n  range: 2\n  step: 0.5\n")

	cfg, err := loadFirst([]string{filepath.Join(dir, "none.yaml"), broken, good})
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Visualizer.Range)

	cfg, err = loadFirst([]string{broken})
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestSearchPaths(t *testing.T) {
	paths := searchPaths("tetris.yaml")
	require.NotEmpty(t, paths)
	assert.Equal(t, filepath.Join("configs", "tetris.yaml"), paths[len(paths)-1])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		errSub string
	}{
		{"base", func(c *TetrisConfig) { c.Timing.BaseDropMs = 0 }, "base_drop_ms"},
		{"step", func(c *TetrisConfig) { c.Timing.StepMs = -5 }, "step_ms"},
		{"range", func(c *TetrisConfig) { c.Visualizer.Range = 0 }, "range"},
		{"plot step", func(c *TetrisConfig) { c.Visualizer.Step = 10 }, "visualizer.step"},
		{"frames", func(c *TetrisConfig) { c.Visualizer.Frames = 0 }, "frames"},
		{"preset", func(c *TetrisConfig) { c.Difficulty.Preset = "nightmare" }, "unknown difficulty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errSub)
		})
	}
}

func TestTimingDurations(t *testing.T) {
	tc := DefaultTetrisConfig().Timing
	assert.Equal(t, time.Second, tc.Base())
	assert.Equal(t, 100*time.Millisecond, tc.Step())
	assert.Equal(t, 100*time.Millisecond, tc.Min())
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		got, err := ParsePreset(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePreset(" HARD ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, got)

	got, err = ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, got)

	_, err = ParsePreset("insane")
	assert.Error(t, err)
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		wantBase int
		wantStep int
	}{
		{DifficultyEasy, 1500, 100},
		{DifficultyNormal, 1000, 100},
		{DifficultyHard, 600, 100},
		{DifficultyFixed, 1000, 0},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyPreset(&cfg, tc.preset)
			assert.Equal(t, tc.wantBase, cfg.Timing.BaseDropMs)
			assert.Equal(t, tc.wantStep, cfg.Timing.StepMs)
			assert.Equal(t, string(tc.preset), cfg.Difficulty.Preset)
		})
	}

	cfg := DefaultTetrisConfig()
	cfg.Timing.BaseDropMs = 120
	ApplyPreset(&cfg, DifficultyHard)
	assert.Equal(t, 100, cfg.Timing.BaseDropMs, "never faster than the minimum")
}
