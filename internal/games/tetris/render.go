package tetris

import (
	"fmt"

	"github.com/vovakirdan/voice-tetris/internal/core"
)

// Layout constants
const (
	cellWidth    = 2 // Screen columns per board cell
	hudHeight    = 1 // Top status line
	sidebarGap   = 2
	sidebarWidth = 18
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
	EmptyChar = '·'
)

// minScreenSize returns the smallest screen that fits the board and sidebar.
func (g *Game) minScreenSize() (int, int) {
	boxW := g.cfg.Board.Cols*cellWidth + 2
	boxH := g.cfg.Board.Rows + 2
	return boxW + sidebarGap + sidebarWidth, boxH + hudHeight
}

// boardRect returns the bordered playfield area, centered horizontally.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	totalW, _ := g.minScreenSize()
	x := core.Clamp((dst.Width()-totalW)/2, 0, dst.Width())
	return core.NewRect(x, hudHeight, g.cfg.Board.Cols*cellWidth+2, g.cfg.Board.Rows+2)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.minScreenSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	area := g.boardRect(dst)
	dst.DrawBox(area, core.ColorGray)
	g.renderBoard(dst, area)
	g.renderPieces(dst, area)
	g.renderSidebar(dst, area)

	switch {
	case g.engine.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", g.engine.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris — Score: %d  Lines: %d  Level: %d",
		g.engine.Score(), g.engine.Lines(), g.Level())
	dst.DrawText(0, 0, hud)
}

// drawCell draws one board cell, two screen columns wide. Rows above the
// board are skipped.
func drawCell(dst *core.Screen, area core.Rect, row, col int, r rune, c core.Color) {
	if row < 0 {
		return
	}
	x := area.X + 1 + col*cellWidth
	y := area.Y + 1 + row
	dst.SetColored(x, y, r, c)
	dst.SetColored(x+1, y, r, c)
}

// renderBoard draws locked cells and empty markers.
func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	board := g.engine.Board()
	for row := range board.Rows() {
		for col := range board.Cols() {
			c := board.CellAt(row, col)
			if c == Empty {
				x := area.X + 1 + col*cellWidth
				dst.SetColored(x, area.Y+1+row, EmptyChar, core.ColorGray)
				continue
			}
			drawCell(dst, area, row, col, BlockChar, c)
		}
	}
}

// renderPieces draws the landing ghost and then the active piece over it.
func (g *Game) renderPieces(dst *core.Screen, area core.Rect) {
	if g.engine.GameOver() {
		return
	}
	p := g.engine.Active()

	if dropY := g.engine.DropY(); dropY > p.Y {
		for _, pt := range p.Shape.Cells() {
			drawCell(dst, area, dropY+pt.Row, p.X+pt.Col, GhostChar, p.Color)
		}
	}

	for _, pt := range p.Shape.Cells() {
		drawCell(dst, area, p.Y+pt.Row, p.X+pt.Col, BlockChar, p.Color)
	}
}

// renderSidebar draws the next piece and game statistics.
func (g *Game) renderSidebar(dst *core.Screen, area core.Rect) {
	x := area.Right() + sidebarGap
	y := area.Y + 1

	dst.DrawText(x, y, "Next:")
	next := g.engine.Next()
	for _, pt := range next.Shape.Cells() {
		px := x + pt.Col*cellWidth
		py := y + 2 + pt.Row
		dst.SetColored(px, py, BlockChar, next.Color)
		dst.SetColored(px+1, py, BlockChar, next.Color)
	}

	elapsed := g.Elapsed()
	stats := []string{
		fmt.Sprintf("Score: %d", g.engine.Score()),
		fmt.Sprintf("Lines: %d", g.engine.Lines()),
		fmt.Sprintf("Level: %d", g.Level()),
		fmt.Sprintf("Time:  %02d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60),
		fmt.Sprintf("Speed: %dms", g.FallDelay().Milliseconds()),
	}
	for i, line := range stats {
		dst.DrawText(x, y+6+i, line)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)

	g.drawCenteredText(dst, line1, box.Y+1)
	g.drawCenteredText(dst, line2, box.Y+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	dst.DrawTextCentered(y, text)
}
