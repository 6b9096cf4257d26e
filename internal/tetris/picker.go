package tetris

import "math/rand"

// Picker chooses the next shape. It is the state machine's only source of
// randomness.
type Picker interface {
	Next() Shape
}

// PickerFunc adapts a function to Picker.
type PickerFunc func() Shape

// Next calls f.
func (f PickerFunc) Next() Shape { return f() }

// RandomPicker draws shapes uniformly from the seven templates.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a picker seeded with seed.
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen shape.
func (p *RandomPicker) Next() Shape {
	return Shapes[p.rng.Intn(ShapeCount)]
}

// SequencePicker replays a fixed list of shapes, wrapping around at the end.
type SequencePicker struct {
	seq []Shape
	pos int
}

// NewSequencePicker creates a picker that yields seq in order.
// An empty sequence always yields ShapeI.
func NewSequencePicker(seq ...Shape) *SequencePicker {
	return &SequencePicker{seq: seq}
}

// Next returns the next shape in the sequence.
func (p *SequencePicker) Next() Shape {
	if len(p.seq) == 0 {
		return ShapeI
	}
	s := p.seq[p.pos%len(p.seq)]
	p.pos++
	return s
}
