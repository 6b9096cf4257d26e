// Package visualizer draws complex functions and piece offsets on a terminal
// screen. It only reads values produced by cnum and tetris and never feeds
// anything back into the game.
package visualizer

import (
	"math"

	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/core"
)

// Plane maps the square [-Range, Range]² of the complex plane onto a screen
// area, with the imaginary axis pointing up.
type Plane struct {
	Area  core.Rect
	Range float64
}

// ToScreen returns the cell that z falls on. ok is false when z is not
// finite or lands outside the area.
func (p Plane) ToScreen(z cnum.Complex) (x, y int, ok bool) {
	if !cnum.IsFinite(z) || p.Range <= 0 || p.Area.W < 1 || p.Area.H < 1 {
		return 0, 0, false
	}
	fx := (z.Re/p.Range + 1) / 2 * float64(p.Area.W-1)
	fy := (1 - z.Im/p.Range) / 2 * float64(p.Area.H-1)
	if math.Abs(fx) > 1e6 || math.Abs(fy) > 1e6 {
		return 0, 0, false
	}
	x = p.Area.X + cnum.RoundInt(fx)
	y = p.Area.Y + cnum.RoundInt(fy)
	return x, y, p.Area.Contains(x, y)
}

// Origin returns the cell of 0+0i.
func (p Plane) Origin() (x, y int) {
	x, y, _ = p.ToScreen(cnum.Zero)
	return x, y
}

// DrawAxes draws the real and imaginary axes.
func (p Plane) DrawAxes(s *core.Screen) {
	ox, oy := p.Origin()
	s.DrawHLine(p.Area.X, oy, p.Area.W, '─', core.ColorGray)
	s.DrawVLine(ox, p.Area.Y, p.Area.H, '│', core.ColorGray)
	s.SetColor(ox, oy, '┼', core.ColorGray)
}

// DrawLabels writes "Re" and "Im" next to the axis ends.
func (p Plane) DrawLabels(s *core.Screen) {
	ox, oy := p.Origin()
	s.DrawTextColor(p.Area.Right()-2, oy-1, "Re", core.ColorWhite)
	s.DrawTextColor(ox+1, p.Area.Y, "Im", core.ColorWhite)
}

// Plot marks z with r if it is visible. It reports whether anything was drawn.
func (p Plane) Plot(s *core.Screen, z cnum.Complex, r rune, c core.Color) bool {
	x, y, ok := p.ToScreen(z)
	if !ok {
		return false
	}
	s.SetColor(x, y, r, c)
	return true
}
