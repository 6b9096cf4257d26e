package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/config"
	"github.com/vovakirdan/cplxtris/internal/platform/tui"
)

var (
	flagRange  float64
	flagStep   float64
	flagFrames int
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize [func]",
	Short: "Plot a complex function",
	Long: `Animate z → f(z) over a grid of the complex plane.

Points are colored by the phase of f(z) and sized by its magnitude; the
image of the unit circle is drawn with ○.

Functions: rotation (i·z), square (z²), exp (eᶻ), reciprocal (1/z).

Controls:
  1-4      - Switch function
  Space    - Replay the animation
  M / P    - Toggle magnitude / phase coloring
  + / -    - Zoom in / out
  ?        - More help
  Q        - Quit

Examples:
  cplxtris visualize
  cplxtris visualize exp --range 4
  cplxtris visualize reciprocal --step 0.25 --frames 100`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVisualize,
}

func init() {
	f := visualizeCmd.Flags()
	f.Float64Var(&flagRange, "range", 0, "Half width of the plotted square (0 = from config)")
	f.Float64Var(&flagStep, "step", 0, "Grid spacing (0 = from config)")
	f.IntVar(&flagFrames, "frames", 0, "Animation length in ticks (0 = from config)")
}

func runVisualize(_ *cobra.Command, args []string) error {
	fn := cnum.FuncRotation
	if len(args) == 1 {
		fn = cnum.ParseFunc(strings.ToLower(args[0]))
		if fn == cnum.FuncIdentity {
			return fmt.Errorf("unknown function %q (want rotation, square, exp or reciprocal)", args[0])
		}
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	if flagRange > 0 {
		cfg.Visualizer.Range = flagRange
	}
	if flagStep > 0 {
		cfg.Visualizer.Step = flagStep
	}
	if flagFrames > 0 {
		cfg.Visualizer.Frames = flagFrames
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("visualizer started", "func", fn, "range", cfg.Visualizer.Range, "step", cfg.Visualizer.Step)
	_, err = tui.RunVisualizer(fn, visualizerOptions(cfg), cfg.Visualizer.Frames, runtimeConfig())
	return err
}
