package cplxtris

import (
	"fmt"

	"github.com/vovakirdan/cplxtris/internal/cnum"
	"github.com/vovakirdan/cplxtris/internal/core"
	"github.com/vovakirdan/cplxtris/internal/tetris"
)

const (
	cellWidth = 2 // screen columns per board cell
	boardX    = 1
	boardY    = 1
	boardW    = tetris.Width*cellWidth + 2
	boardH    = tetris.Height + 2
	panelX    = boardX + boardW + 2
	plotW     = 17
	plotH     = 9

	minWidth  = panelX + plotW + 14
	minHeight = boardY + boardH + 1
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderBoard(dst)
	g.renderPanel(dst)
	g.renderOverlays(dst)
	dst.DrawTextColor(boardX, boardY+boardH, g.Controls(), core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minWidth, minHeight))
}

// drawCell paints board cell p (row may be off-board) with r in color c.
func drawCell(dst *core.Screen, p tetris.Point, r rune, c core.Color) {
	if p.Y < 0 || p.Y >= tetris.Height || p.X < 0 || p.X >= tetris.Width {
		return
	}
	x := boardX + 1 + p.X*cellWidth
	y := boardY + 1 + p.Y
	for i := range cellWidth {
		dst.SetColor(x+i, y, r, c)
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorWhite)
	dst.DrawTextColor(boardX+(boardW-len(g.Title()))/2, 0, g.Title(), core.ColorBrightWhite)

	s := g.state
	for y := range tetris.Height {
		for x := range tetris.Width {
			p := tetris.Point{X: x, Y: y}
			if c := s.Board.At(p); c != tetris.Empty {
				drawCell(dst, p, '█', c)
				continue
			}
			dst.SetColor(boardX+1+x*cellWidth, boardY+1+y, '·', core.ColorGray)
		}
	}

	// After game over the last piece is already part of the board.
	if s.GameOver {
		return
	}
	if g.settings.Ghost {
		g.drawPiece(dst, s.Piece, tetris.LandingAnchor(s), '░', s.Shape.Color())
	}
	g.drawPiece(dst, s.Piece, s.Anchor, '█', s.Shape.Color())
}

func (g *Game) drawPiece(dst *core.Screen, piece tetris.Piece, anchor tetris.Point, r rune, c core.Color) {
	for _, z := range piece {
		if p, ok := tetris.CellOf(z, anchor); ok {
			drawCell(dst, p, r, c)
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen) {
	s := g.state
	y := boardY
	dst.DrawText(panelX, y, fmt.Sprintf("Score: %d", s.Score))
	dst.DrawText(panelX, y+1, fmt.Sprintf("Lines: %d", s.Lines))
	dst.DrawText(panelX, y+2, fmt.Sprintf("Level: %d", s.Level))

	dst.DrawText(panelX, y+4, "Next:")
	for _, z := range s.Next.Template() {
		px := panelX + 2 + (cnum.RoundInt(z.Re)+1)*cellWidth
		py := y + 5 + cnum.RoundInt(z.Im)
		for i := range cellWidth {
			dst.SetColor(px+i, py, '█', s.Next.Color())
		}
	}

	y += 8
	if g.mode == ModeComplex {
		dst.DrawText(panelX, y, "f(z) = "+g.transform.Symbol())
		x := panelX
		for i, f := range cnum.Funcs {
			label := fmt.Sprintf("%d:%s ", i+1, f.Symbol())
			c := core.ColorGray
			if f == g.transform {
				c = core.ColorBrightYellow
			}
			dst.DrawTextColor(x, y+1, label, c)
			x += len([]rune(label))
		}
	} else {
		dst.DrawText(panelX, y, "Rotate: z → i·z")
	}

	plot := core.NewRect(panelX, y+3, plotW, plotH)
	g.plot.Draw(dst, plot)
	for i, label := range g.plot.Labels() {
		dst.DrawTextColor(plot.Right()+1, plot.Y+1+i, label, s.Shape.Color())
	}
}

func (g *Game) renderOverlays(dst *core.Screen) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.state.GameOver:
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.state.Score),
			"Press R to restart")
	case g.state.Paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.Fill(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}
