package tetris

// PieceEvent describes the active piece after a change to its shape or offsets.
type PieceEvent struct {
	Shape  Shape
	Piece  Piece
	Anchor Point
}

// Observer receives PieceEvents. The machine works the same with no observer.
type Observer interface {
	PieceChanged(PieceEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(PieceEvent)

// PieceChanged calls f.
func (f ObserverFunc) PieceChanged(e PieceEvent) { f(e) }
