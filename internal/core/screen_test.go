package core

import (
	"strings"
	"testing"
)

func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if row != "      " {
			t.Errorf("row %d = %q, want blanks", y, row)
		}
	}

	neg := NewScreen(-4, -1)
	if neg.Width() != 0 || neg.Height() != 0 || neg.String() != "" {
		t.Errorf("negative size should give an empty screen, got %dx%d", neg.Width(), neg.Height())
	}
}

func TestScreenClipsWrites(t *testing.T) {
	s := NewScreen(4, 2)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColor(p[0], p[1], '#', ColorRed)
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("out-of-bounds writes leaked: %q", got)
	}
	if c := s.GetCell(9, 9); c != blankCell {
		t.Errorf("GetCell outside = %+v, want blank", c)
	}

	s.DrawText(2, 1, "xyz")
	if got := rows(s)[1]; got != "  xy" {
		t.Errorf("clipped text = %q", got)
	}
	s.DrawText(-1, 0, "ab")
	if s.Get(0, 0) != 'b' {
		t.Errorf("text starting left of the screen: got %q at 0,0", s.Get(0, 0))
	}
}

func TestScreenMultibyteText(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColor(0, 0, "eᶻ z²", ColorCyan)
	if got := rows(s)[0]; got != "eᶻ z²   " {
		t.Errorf("row = %q", got)
	}
	if c := s.GetCell(1, 0); c.Rune != 'ᶻ' || c.Color != ColorCyan {
		t.Errorf("cell 1 = %+v", c)
	}

	s.Clear()
	s.DrawTextCentered(0, "1/z")
	if got := rows(s)[0]; got != "  1/z   " {
		t.Errorf("centered = %q", got)
	}
	s.Clear()
	s.DrawTextCentered(0, "i·z")
	if s.Get(2, 0) != 'i' {
		t.Errorf("centering should count runes, got %q", rows(s)[0])
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 2, "wxyz")

	s.Resize(2, 4)
	want := []string{"ab", "  ", "wx", "  "}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("after shrink row %d = %q, want %q", y, row, want[y])
		}
	}

	s.Resize(5, 1)
	if got := s.String(); got != "ab   " {
		t.Errorf("after grow = %q", got)
	}
}

func TestScreenBoxAndFill(t *testing.T) {
	s := NewScreen(5, 4)
	s.Fill(NewRect(0, 0, 5, 4), '.', ColorGray)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorWhite)

	want := []string{
		"┌──┐.",
		"│..│.",
		"└──┘.",
		".....",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, want %q", y, row, want[y])
		}
	}
	if c := s.GetCell(0, 0); c.Color != ColorWhite {
		t.Errorf("corner color = %v", c.Color)
	}
	if c := s.GetCell(1, 1); c.Color != ColorGray {
		t.Errorf("interior color = %v", c.Color)
	}

	before := s.String()
	s.DrawBox(NewRect(0, 0, 1, 5), ColorRed)
	if s.String() != before {
		t.Error("a box narrower than 2 cells should draw nothing")
	}
}

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("edges = %d,%d", r.Right(), r.Bottom())
	}
	if !r.Contains(2, 3) || !r.Contains(5, 7) || r.Contains(6, 7) || r.Contains(5, 8) {
		t.Error("Contains should be half-open")
	}

	in := r.Inset(1)
	if in != NewRect(3, 4, 2, 3) {
		t.Errorf("Inset(1) = %+v", in)
	}
	if !r.Inset(3).Empty() || r.Inset(3).W != 0 {
		t.Errorf("Inset past the middle = %+v", r.Inset(3))
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("Clamp(7) = %d", got)
	}
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5) = %v", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp(0.25) = %v", got)
	}
}

func TestColorBright(t *testing.T) {
	if ColorRed.Bright() != ColorBrightRed || ColorWhite.Bright() != ColorBrightWhite {
		t.Error("base colors should map to their bright variants")
	}
	for _, c := range []Color{ColorDefault, ColorOrange, ColorGray, ColorBrightBlue} {
		if c.Bright() != c {
			t.Errorf("%v.Bright() = %v, want unchanged", c, c.Bright())
		}
	}
	if !ColorBrightCyan.IsBright() || ColorCyan.IsBright() || ColorOrange.IsBright() {
		t.Error("IsBright mismatch")
	}
}
