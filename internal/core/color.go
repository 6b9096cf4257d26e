package core

// Color is the foreground color of a screen cell. The frontend maps each
// value to an ANSI code; game code only picks from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange // L piece
	ColorGray   // axes, hints, empty cells
)

// brightOffset is the distance between a base color and its bright variant.
const brightOffset = ColorBrightRed - ColorRed

// Bright returns the bright variant of a base ANSI color. Colors without a
// bright variant are returned unchanged.
func (c Color) Bright() Color {
	if c >= ColorRed && c <= ColorWhite {
		return c + brightOffset
	}
	return c
}

// IsBright reports whether c is one of the bright ANSI variants.
func (c Color) IsBright() bool {
	return c >= ColorBrightRed && c <= ColorBrightWhite
}
