package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cplxtris/internal/platform/tui"
	"github.com/vovakirdan/cplxtris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Modes:
  tetris          - Classic rotation (z → i·z, the O piece does not turn)
  tetris_complex  - Apply the selected function to the piece, with wall kicks

Controls:
  ←/→ or A/D     - Move
  ↓ or S         - Soft drop
  ↑/W/Space      - Rotate or apply the selected function
  Enter          - Hard drop
  1-4            - Select i·z, z², eᶻ or 1/z (complex mode)
  P              - Pause
  R              - Restart (after game over)
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower base speed
  normal - Default speed curve
  hard   - Faster base speed
  fixed  - Speed never increases with level

Examples:
  cplxtris play tetris
  cplxtris play tetris_complex --difficulty hard
  cplxtris play tetris --config ./my-tetris.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'cplxtris list' to see available modes)", gameID)
	}

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		logger.Error("config load failed", "err", err)
		return err
	}
	applyGameConfig(cfg)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStoreSoft()
	defer closeStore(store)

	if _, err := tui.Run(game, runtimeConfig(), tui.Options{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
