package tetris

import "github.com/vovakirdan/cplxtris/internal/cnum"

// State is a complete game snapshot. It holds no pointers or slices, so
// assignment copies it and two states can be compared with ==.
type State struct {
	Board    Board
	Piece    Piece // live offsets of the active piece
	Shape    Shape // template the active piece came from
	Anchor   Point
	Next     Shape
	Score    int
	Level    int
	Lines    int
	GameOver bool
	Paused   bool
}

// Direction is a single-step translation.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) delta() Point {
	switch d {
	case Left:
		return Point{X: -1}
	case Right:
		return Point{X: 1}
	default:
		return Point{Y: 1}
	}
}

// kicks is the horizontal search order used by Transform.
var kicks = [...]int{0, -1, 1, -2, 2}

// Machine applies commands to states. It owns the next-piece source and an
// optional observer; it never keeps a reference to a state.
type Machine struct {
	picker   Picker
	observer Observer
}

// NewMachine creates a machine that draws shapes from picker.
// A nil picker falls back to a RandomPicker seeded with 0.
func NewMachine(picker Picker) *Machine {
	if picker == nil {
		picker = NewRandomPicker(0)
	}
	return &Machine{picker: picker}
}

// SetObserver attaches o (or detaches it when nil).
func (m *Machine) SetObserver(o Observer) {
	m.observer = o
}

// NewGame returns a fresh state with an empty board and two shapes drawn.
func (m *Machine) NewGame() State {
	s := m.newGame()
	m.emit(s)
	return s
}

func (m *Machine) newGame() State {
	shape := m.picker.Next()
	return State{
		Shape:  shape,
		Piece:  shape.Template(),
		Anchor: SpawnAnchor,
		Next:   m.picker.Next(),
	}
}

// Restart discards s and starts a new game. It is effective in every state.
func (m *Machine) Restart(State) State {
	return m.NewGame()
}

// TogglePause flips the paused flag. It has no effect after game over.
func (m *Machine) TogglePause(s State) State {
	if s.GameOver {
		return s
	}
	s.Paused = !s.Paused
	return s
}

// Move shifts the piece one cell. A blocked Down locks the piece; a blocked
// Left or Right returns s unchanged.
func (m *Machine) Move(s State, dir Direction) State {
	return m.notify(s, m.move(s, dir))
}

func (m *Machine) move(s State, dir Direction) State {
	if !active(s) {
		return s
	}
	d := dir.delta()
	next := Point{X: s.Anchor.X + d.X, Y: s.Anchor.Y + d.Y}
	if Valid(s.Piece, next, &s.Board) {
		s.Anchor = next
		return s
	}
	if dir == Down {
		return m.lock(s)
	}
	return s
}

// Rotate turns the piece a quarter turn in place. The O shape never rotates,
// and a blocked rotation is rejected without searching other anchors.
func (m *Machine) Rotate(s State) State {
	return m.notify(s, m.rotate(s))
}

func (m *Machine) rotate(s State) State {
	if !active(s) || s.Shape == ShapeO {
		return s
	}
	rotated := s.Piece.Rotate()
	if !Valid(rotated, s.Anchor, &s.Board) {
		return s
	}
	s.Piece = rotated
	return s
}

// Transform applies f to the piece, snaps it to the grid and places it at the
// first valid horizontal offset in kick order. If none fits, s is returned.
func (m *Machine) Transform(s State, f cnum.Func) State {
	return m.notify(s, m.transform(s, f))
}

func (m *Machine) transform(s State, f cnum.Func) State {
	if !active(s) {
		return s
	}
	snapped := s.Piece.Transform(f)
	for _, dx := range kicks {
		anchor := Point{X: s.Anchor.X + dx, Y: s.Anchor.Y}
		if Valid(snapped, anchor, &s.Board) {
			s.Piece = snapped
			s.Anchor = anchor
			return s
		}
	}
	return s
}

// HardDrop moves the piece to its landing anchor and locks it.
func (m *Machine) HardDrop(s State) State {
	return m.notify(s, m.hardDrop(s))
}

func (m *Machine) hardDrop(s State) State {
	if !active(s) {
		return s
	}
	s.Anchor = LandingAnchor(s)
	return m.lock(s)
}

// LandingAnchor returns the lowest anchor the active piece can reach by
// moving straight down from its current position.
func LandingAnchor(s State) Point {
	a := s.Anchor
	for {
		below := Point{X: a.X, Y: a.Y + 1}
		if !Valid(s.Piece, below, &s.Board) {
			return a
		}
		a = below
	}
}

// lock merges the piece into the board, clears lines, scores and spawns the
// next piece. A spawn that does not fit ends the game and leaves the locked
// piece as the active one.
func (m *Machine) lock(s State) State {
	board := s.Board.Lock(s.Piece, s.Anchor, s.Shape.Color())
	board, cleared := ClearLines(board)

	s.Board = board
	s.Score += CalculateScore(cleared, s.Level)
	s.Lines += cleared
	s.Level = LevelFor(s.Lines)

	spawned := s.Next.Template()
	if !Valid(spawned, SpawnAnchor, &s.Board) {
		s.GameOver = true
		return s
	}
	s.Shape = s.Next
	s.Piece = spawned
	s.Anchor = SpawnAnchor
	s.Next = m.picker.Next()
	return s
}

func active(s State) bool {
	return !s.GameOver && !s.Paused
}

func (m *Machine) notify(prev, next State) State {
	if prev.Piece != next.Piece || prev.Shape != next.Shape {
		m.emit(next)
	}
	return next
}

func (m *Machine) emit(s State) {
	if m.observer == nil {
		return
	}
	m.observer.PieceChanged(PieceEvent{Shape: s.Shape, Piece: s.Piece, Anchor: s.Anchor})
}
