package dots

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/games/dots/board"
)

const (
	runePoint     = '●'
	runeHLine     = '─'
	runeVLine     = '│'
	runeDragTrail = '·'
	runeFill      = '░'
)

// squareColors tints completed squares by their letter.
var squareColors = []core.Color{
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorOrange,
	core.ColorRed,
}

const hints = " drag: connect  arrows+space: keyboard  esc: cancel  +/-: grid  p: pause  q: quit"

// Render draws the board, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)
	dst.DrawTextColored(0, dst.Height()-1, hints, core.ColorGray)

	if g.tooSmall {
		w, h := g.MinScreen()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d, press - to shrink", w, h))
		return
	}

	snap := g.board.Snapshot()
	g.renderSquares(dst, snap.Squares)
	g.renderConnections(dst, snap.Connections)
	if snap.Drag != nil {
		x0, y0 := g.CellFromSurface(snap.Drag.From)
		x1, y1 := g.CellFromSurface(snap.Drag.To)
		dst.DrawLine(x0, y0, x1, y1, runeDragTrail, core.ColorBrightYellow)
	}
	g.renderPoints(dst, snap.Points)

	switch {
	case g.board.Complete():
		g.renderOverlay(dst, "Board complete!",
			fmt.Sprintf("%d squares in %d moves, R for a new board", len(snap.Squares), g.moves))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Grid %s  Squares %d/%d  Moves %d",
		g.Title(), gridLabel(g.board.Width(), g.board.Height()),
		len(g.board.Squares()), g.board.TotalSquares(), g.moves)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func (g *Game) renderSquares(dst *core.Screen, squares []board.SquareView) {
	step := g.cfg.Surface.Spacing
	for _, sq := range squares {
		color := squareColors[int(sq.Text-'A')%len(squareColors)]

		x0, y0 := g.CellFromSurface(sq.TopLeft)
		x1, y1 := g.CellFromSurface(board.Pos{X: sq.TopLeft.X + step, Y: sq.TopLeft.Y + step})
		for y := y0 + 1; y < y1; y++ {
			dst.DrawHLine(x0+1, y, x1-x0-1, runeFill, color)
		}

		cx, cy := g.CellFromSurface(sq.Center)
		dst.SetColored(cx, cy, sq.Text, core.ColorBrightWhite)
	}
}

func (g *Game) renderConnections(dst *core.Screen, segments []board.Segment) {
	for _, s := range segments {
		x0, y0 := g.CellFromSurface(s.From)
		x1, y1 := g.CellFromSurface(s.To)
		switch {
		case y0 == y1:
			dst.DrawHLine(core.Min(x0, x1)+1, y0, core.Abs(x1-x0)-1, runeHLine, core.ColorWhite)
		case x0 == x1:
			dst.DrawVLine(x0, core.Min(y0, y1)+1, core.Abs(y1-y0)-1, runeVLine, core.ColorWhite)
		default:
			dst.DrawLine(x0, y0, x1, y1, '*', core.ColorWhite)
		}
	}
}

func (g *Game) renderPoints(dst *core.Screen, points []board.Point) {
	drag, dragging := g.board.Drag()
	for _, p := range points {
		color := core.ColorWhite
		switch {
		case dragging && p.ID == drag.Origin:
			color = core.ColorBrightCyan
		case p.ID == g.cursor:
			color = core.ColorBrightYellow
		}
		x, y := g.CellFromSurface(p.Pos)
		dst.SetColored(x, y, runePoint, color)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	textW := core.Max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	box := core.NewRect((dst.Width()-textW-4)/2, (dst.Height()-5)/2, textW+4, 5)

	dst.ClearRect(box)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func gridLabel(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}
