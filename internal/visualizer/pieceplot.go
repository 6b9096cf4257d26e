package visualizer

import (
	"github.com/vovakirdan/cplxtris/internal/core"
	"github.com/vovakirdan/cplxtris/internal/tetris"
)

// PieceRange is the half-width of the plane used for piece plots. Transformed
// offsets beyond it are listed but not drawn.
const PieceRange = 4.0

// PiecePlot records the latest piece event and draws its offsets on a small
// complex plane. It implements tetris.Observer.
type PiecePlot struct {
	last    tetris.PieceEvent
	updates int
}

// NewPiecePlot creates an empty plot.
func NewPiecePlot() *PiecePlot {
	return &PiecePlot{}
}

// PieceChanged stores e.
func (p *PiecePlot) PieceChanged(e tetris.PieceEvent) {
	p.last = e
	p.updates++
}

// Last returns the most recent event and whether one was received.
func (p *PiecePlot) Last() (tetris.PieceEvent, bool) {
	return p.last, p.updates > 0
}

// Updates returns how many events have been received.
func (p *PiecePlot) Updates() int {
	return p.updates
}

// Draw plots the offsets of the last piece inside area and returns how many
// of them were visible.
func (p *PiecePlot) Draw(s *core.Screen, area core.Rect) int {
	plane := Plane{Area: area, Range: PieceRange}
	plane.DrawAxes(s)
	plane.DrawLabels(s)
	e, ok := p.Last()
	if !ok {
		return 0
	}
	visible := 0
	for _, z := range e.Piece {
		if plane.Plot(s, z, '■', e.Shape.Color()) {
			visible++
		}
	}
	return visible
}

// Labels returns the offsets of the last piece as a+bi strings.
func (p *PiecePlot) Labels() []string {
	e, ok := p.Last()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(e.Piece))
	for _, z := range e.Piece {
		out = append(out, z.String())
	}
	return out
}
