package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/cplxtris/internal/config"
	"github.com/vovakirdan/cplxtris/internal/core"
	"github.com/vovakirdan/cplxtris/internal/games/cplxtris"
	"github.com/vovakirdan/cplxtris/internal/storage"
)

const (
	backendSQLite = "sqlite"
	backendRedis  = "redis"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// setupLogger sends logs to ~/.cplxtris/cplxtris.log. The terminal belongs
// to the TUI, so nothing is written to stderr.
func setupLogger(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".cplxtris")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "cplxtris.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				logFile = f
				w = f
			}
		}
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cplxtris",
		Level:           lvl,
	})
	return nil
}

func closeLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// runtimeConfig sizes the screen from the terminal, defaulting to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// loadConfig reads the configuration and applies the difficulty flag, which
// overrides the preset from the file. An empty override keeps the file's.
func loadConfig(override string) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}

	name := override
	if strings.TrimSpace(name) == "" {
		name = cfg.Difficulty.Preset
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	logger.Debug("config loaded", "path", flagConfig, "preset", preset,
		"base_drop_ms", cfg.Timing.BaseDropMs, "step_ms", cfg.Timing.StepMs)
	return cfg, nil
}

// applyGameConfig installs cfg as the settings for games created next.
func applyGameConfig(cfg config.TetrisConfig) {
	cplxtris.SetSettings(cplxtris.SettingsFromConfig(cfg))
}

// openStore opens the backend chosen with --scores.
func openStore(ctx context.Context) (storage.ScoreStore, error) {
	switch strings.ToLower(flagScores) {
	case backendSQLite, "":
		store, err := storage.OpenSQLite(ctx, flagDBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case backendRedis:
		rc := storage.DefaultRedisConfig()
		rc.Addr = flagRedisAddr
		rc.Password = os.Getenv("CPLXTRIS_REDIS_PASSWORD")
		store, err := storage.OpenRedis(ctx, rc)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown score backend %q (want sqlite or redis)", flagScores)
	}
}

// openStoreSoft opens the store for play. Games run without one when it fails.
func openStoreSoft() storage.ScoreStore {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scores will not be saved: %v\n", err)
		logger.Warn("could not open score store", "backend", flagScores, "err", err)
		return nil
	}
	return store
}

func closeStore(store storage.ScoreStore) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing score store", "err", err)
	}
}
