package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/config"
	"github.com/vovakirdan/cplxtris/internal/platform/tui"
	"github.com/vovakirdan/cplxtris/internal/registry"
	"github.com/vovakirdan/cplxtris/internal/visualizer"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Start in interactive menu mode.

After a game ends or you press Esc, you return to the menu.

Controls:
  Up/Down/j/k   - Choose mode
  Left/Right    - Choose difficulty
  Enter/Space   - Play
  Tab           - High scores
  V             - Function visualizer
  Q             - Quit

Examples:
  cplxtris menu
  cplxtris menu --fps 30
  cplxtris menu --scores redis`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if flagDifficulty == "" {
		preset, err = config.ParsePreset(base.Difficulty.Preset)
	}
	if err != nil {
		return err
	}

	store := openStoreSoft()
	defer closeStore(store)

	rc := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, rc, preset)
		if err != nil {
			return err
		}
		rc = res.Config
		preset = res.Preset

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}

		case res.WantsVisualizer:
			opts := visualizerOptions(base)
			goBack, err := tui.RunVisualizer(cnum.FuncRotation, opts, base.Visualizer.Frames, rc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}

		default:
			cfg := base
			config.ApplyPreset(&cfg, preset)
			applyGameConfig(cfg)

			game, err := registry.Create(res.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				continue
			}
			if flagSeed == 0 {
				rc.Seed = time.Now().UnixNano()
			}
			backToMenu, err := tui.Run(game, rc, tui.Options{Store: store, Logger: logger})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			if !backToMenu {
				return nil
			}
		}
	}
}

func visualizerOptions(cfg config.TetrisConfig) visualizer.Options {
	return visualizer.Options{
		Range:         cfg.Visualizer.Range,
		Step:          cfg.Visualizer.Step,
		ShowMagnitude: cfg.Visualizer.ShowMagnitude,
		ShowPhase:     cfg.Visualizer.ShowPhase,
	}
}
