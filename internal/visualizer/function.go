package visualizer

import (
	"math"

	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/core"
)

// Options controls sampling and coloring of a function plot.
type Options struct {
	Range         float64 // half-width of the sampled square
	Step          float64 // grid spacing
	ShowMagnitude bool
	ShowPhase     bool
}

// DefaultOptions samples [-3, 3]² every 0.2 with both color channels on.
func DefaultOptions() Options {
	return Options{Range: 3, Step: 0.2, ShowMagnitude: true, ShowPhase: true}
}

// Sample is one grid point and where the function sends it.
type Sample struct {
	Z cnum.Complex
	W cnum.Complex
}

// circleSteps is the number of points used to trace the unit circle.
const circleSteps = 126

// Grid samples f over the square described by opts. Progress t in [0, 1]
// interpolates each image between z (t=0) and f(z) (t=1).
func Grid(f cnum.Func, opts Options, t float64) []Sample {
	if opts.Step <= 0 || opts.Range <= 0 {
		return nil
	}
	t = core.Clamp(t, 0, 1)
	n := int(math.Round(2 * opts.Range / opts.Step))
	out := make([]Sample, 0, (n+1)*(n+1))
	for i := 0; i <= n; i++ {
		re := -opts.Range + float64(i)*opts.Step
		for j := 0; j <= n; j++ {
			im := -opts.Range + float64(j)*opts.Step
			z := cnum.New(re, im)
			out = append(out, Sample{Z: z, W: morph(f, z, t)})
		}
	}
	return out
}

// UnitCircle returns the image of the unit circle under f at progress t.
func UnitCircle(f cnum.Func, t float64) []cnum.Complex {
	t = core.Clamp(t, 0, 1)
	out := make([]cnum.Complex, 0, circleSteps+1)
	for k := 0; k <= circleSteps; k++ {
		theta := 2 * math.Pi * float64(k) / circleSteps
		out = append(out, morph(f, cnum.FromPolar(1, theta), t))
	}
	return out
}

func morph(f cnum.Func, z cnum.Complex, t float64) cnum.Complex {
	w := f.Apply(z)
	if t >= 1 {
		return w
	}
	return cnum.Lerp(z, w, t)
}

var hues = [6]core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Hue maps the phase of z from (-π, π] onto [0, 360).
func Hue(z cnum.Complex) float64 {
	h := (cnum.Phase(z) + math.Pi) / (2 * math.Pi) * 360
	return math.Mod(h, 360)
}

// Lightness maps the magnitude of z onto [20, 80], saturating at |z| = 2.
func Lightness(z cnum.Complex) float64 {
	return 20 + math.Min(cnum.Magnitude(z)/2, 1)*60
}

// ColorOf picks a terminal color for z: phase chooses the hue sector and
// magnitude chooses between the normal and bright variant.
func ColorOf(z cnum.Complex, opts Options) core.Color {
	bright := opts.ShowMagnitude && Lightness(z) >= 50
	switch {
	case opts.ShowPhase:
		sector := int(Hue(z)/60+0.5) % len(hues)
		if bright {
			return hues[sector].Bright()
		}
		return hues[sector]
	case opts.ShowMagnitude:
		if bright {
			return core.ColorWhite.Bright()
		}
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}

// Glyph picks a marker whose weight follows the magnitude of z.
func Glyph(z cnum.Complex, opts Options) rune {
	if !opts.ShowMagnitude {
		return '•'
	}
	switch m := cnum.Magnitude(z); {
	case m < 1:
		return '·'
	case m < 2:
		return '•'
	default:
		return '●'
	}
}

// Render draws the plot of f at progress t into area: axes, the sampled grid
// image and the image of the unit circle. It returns the number of grid
// samples that landed inside the area.
func Render(s *core.Screen, area core.Rect, f cnum.Func, opts Options, t float64) int {
	p := Plane{Area: area, Range: opts.Range}
	p.DrawAxes(s)

	visible := 0
	for _, smp := range Grid(f, opts, t) {
		if p.Plot(s, smp.W, Glyph(smp.W, opts), ColorOf(smp.W, opts)) {
			visible++
		}
	}
	for _, w := range UnitCircle(f, t) {
		p.Plot(s, w, '○', core.ColorBrightGreen)
	}
	p.DrawLabels(s)
	return visible
}
