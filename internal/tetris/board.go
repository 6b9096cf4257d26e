package tetris

import (
	"math"

	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/core"
)

// Board dimensions.
const (
	Width  = 10
	Height = 20
)

// Empty marks a free board cell.
const Empty = core.ColorDefault

// maxOffset bounds offsets converted to board coordinates; anything larger
// is off the board anyway.
const maxOffset = 1 << 16

// Point is a board position: X is the column, Y is the row (0 at the top).
type Point struct {
	X, Y int
}

// SpawnAnchor is where every new piece appears.
var SpawnAnchor = Point{X: 5, Y: 0}

// Board is the grid of locked cells, indexed [row][column].
// It is an array, so assignment copies it and a returned board never aliases
// the one it was derived from.
type Board [Height][Width]core.Color

// CellOf maps an offset to a board cell relative to anchor.
// ok is false when the offset is not finite.
func CellOf(z cnum.Complex, anchor Point) (p Point, ok bool) {
	if !cnum.IsFinite(z) || math.Abs(z.Re) > maxOffset || math.Abs(z.Im) > maxOffset {
		return Point{}, false
	}
	return Point{
		X: anchor.X + cnum.RoundInt(z.Re),
		Y: anchor.Y + cnum.RoundInt(z.Im),
	}, true
}

// At returns the cell at p, or Empty when p is outside the board.
func (b *Board) At(p Point) core.Color {
	if p.X < 0 || p.X >= Width || p.Y < 0 || p.Y >= Height {
		return Empty
	}
	return b[p.Y][p.X]
}

// Valid reports whether piece fits at anchor: every cell must be inside the
// columns, above the floor and on an empty cell. Rows above the top edge are
// allowed and not collision-checked, since pieces spawn partly above row 0.
func Valid(piece Piece, anchor Point, board *Board) bool {
	for _, z := range piece {
		p, ok := CellOf(z, anchor)
		if !ok {
			return false
		}
		if p.X < 0 || p.X >= Width || p.Y >= Height {
			return false
		}
		if p.Y < 0 {
			continue
		}
		if board[p.Y][p.X] != Empty {
			return false
		}
	}
	return true
}

// Lock returns a copy of b with the piece's cells filled with color.
// Cells above the visible board are skipped.
func (b Board) Lock(piece Piece, anchor Point, color core.Color) Board {
	for _, z := range piece {
		p, ok := CellOf(z, anchor)
		if !ok || p.X < 0 || p.X >= Width || p.Y < 0 || p.Y >= Height {
			continue
		}
		b[p.Y][p.X] = color
	}
	return b
}

// ClearLines removes every full row, keeps the order of the others and pads
// the top with empty rows. It returns the new board and the number of rows removed.
func ClearLines(b Board) (Board, int) {
	var out Board
	write := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if rowFull(b[y]) {
			continue
		}
		out[write] = b[y]
		write--
	}
	return out, write + 1
}

func rowFull(row [Width]core.Color) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if b[y][x] != Empty {
				n++
			}
		}
	}
	return n
}
