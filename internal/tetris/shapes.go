// Package tetris implements the falling-block state machine.
//
// Piece geometry is a set of four complex offsets from the piece's logical
// center; rotation is multiplication by i and the alternate transform mode
// applies an analytic function from package cnum and snaps the result back
// to the grid. Every operation takes a State by value and returns a State, so
// a caller detects a rejected command with a plain == comparison.
package tetris

import (
	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/core"
)

// Shape identifies one of the seven piece templates.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of templates.
const ShapeCount = 7

// Shapes lists every template in declaration order.
var Shapes = [ShapeCount]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// Piece holds the four live offsets of a piece relative to its anchor.
type Piece [4]cnum.Complex

var templates = [ShapeCount]Piece{
	ShapeI: {cnum.New(-1, 0), cnum.New(0, 0), cnum.New(1, 0), cnum.New(2, 0)},
	ShapeO: {cnum.New(0, 0), cnum.New(1, 0), cnum.New(0, 1), cnum.New(1, 1)},
	ShapeT: {cnum.New(-1, 0), cnum.New(0, 0), cnum.New(1, 0), cnum.New(0, 1)},
	ShapeS: {cnum.New(0, 0), cnum.New(1, 0), cnum.New(-1, 1), cnum.New(0, 1)},
	ShapeZ: {cnum.New(-1, 0), cnum.New(0, 0), cnum.New(0, 1), cnum.New(1, 1)},
	ShapeJ: {cnum.New(-1, 1), cnum.New(-1, 0), cnum.New(0, 0), cnum.New(1, 0)},
	ShapeL: {cnum.New(1, 1), cnum.New(-1, 0), cnum.New(0, 0), cnum.New(1, 0)},
}

var colors = [ShapeCount]core.Color{
	ShapeI: core.ColorCyan,
	ShapeO: core.ColorYellow,
	ShapeT: core.ColorMagenta,
	ShapeS: core.ColorGreen,
	ShapeZ: core.ColorRed,
	ShapeJ: core.ColorBlue,
	ShapeL: core.ColorOrange,
}

// Valid reports whether s is one of the seven templates.
func (s Shape) Valid() bool {
	return s >= 0 && s < ShapeCount
}

// Template returns the spawn offsets of the shape.
func (s Shape) Template() Piece {
	if !s.Valid() {
		return Piece{}
	}
	return templates[s]
}

// Color returns the display color used for the shape and its locked cells.
func (s Shape) Color() core.Color {
	if !s.Valid() {
		return core.ColorDefault
	}
	return colors[s]
}

// String returns the conventional letter of the shape.
func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return "IOTSZJL"[s : s+1]
}

// Map applies fn to every offset.
func (p Piece) Map(fn func(cnum.Complex) cnum.Complex) Piece {
	var out Piece
	for i, z := range p {
		out[i] = fn(z)
	}
	return out
}

// Rotate multiplies every offset by i.
func (p Piece) Rotate() Piece {
	return p.Map(cnum.RotateByI)
}

// Transform applies f to every offset and snaps the results to the grid.
func (p Piece) Transform(f cnum.Func) Piece {
	return p.Map(func(z cnum.Complex) cnum.Complex {
		return cnum.Round(f.Apply(z))
	})
}

// Translate adds offset to every position.
func (p Piece) Translate(offset cnum.Complex) Piece {
	return p.Map(func(z cnum.Complex) cnum.Complex {
		return cnum.Add(z, offset)
	})
}
