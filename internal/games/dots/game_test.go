package dots

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/games/dots/board"
	"github.com/vovakirdan/tui-dots/internal/registry"
)

func newGame(t *testing.T, w, h int) *Game {
	t.Helper()
	// Keep a user config in ~/.dots out of the test.
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    12345,
		GridW:   w,
		GridH:   h,
	})
	return g
}

func pid(col, row int) board.PointID { return board.PointID{Col: col, Row: row} }

// cellOf returns the screen cell a point is drawn at.
func cellOf(t *testing.T, g *Game, id board.PointID) (int, int) {
	t.Helper()
	p, ok := g.Board().Point(id)
	if !ok {
		t.Fatalf("no point %v", id)
	}
	return g.CellFromSurface(p.Pos)
}

// mouseDrag builds a frame pressing on one point and releasing on another.
func mouseDrag(t *testing.T, g *Game, from, to board.PointID) core.InputFrame {
	t.Helper()
	in := core.NewInputFrame()
	appendDrag(t, g, &in, from, to)
	return in
}

func appendDrag(t *testing.T, g *Game, in *core.InputFrame, from, to board.PointID) {
	t.Helper()
	x0, y0 := cellOf(t, g, from)
	x1, y1 := cellOf(t, g, to)
	in.Push(core.PointerEvent{Kind: core.PointerDown, X: x0, Y: y0})
	in.Push(core.PointerEvent{Kind: core.PointerMove, X: x1, Y: y1})
	in.Push(core.PointerEvent{Kind: core.PointerUp, X: x1, Y: y1})
}

func keys(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Dots & Boxes" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.Resizer); !ok {
		t.Error("game should follow terminal resizes")
	}
	if _, ok := g.(core.Summarizer); !ok {
		t.Error("game should summarize rounds")
	}
}

func TestSurfaceCellRoundTrip(t *testing.T) {
	g := newGame(t, 5, 4)

	for _, p := range g.Board().Points() {
		x, y := g.CellFromSurface(p.Pos)
		if got := g.SurfaceFromCell(x, y); got != p.Pos {
			t.Errorf("point %v: cell (%d, %d) maps back to %v, expected %v", p.ID, x, y, got, p.Pos)
		}
	}

	// Horizontal neighbours sit one spacing apart in columns.
	x0, y0 := cellOf(t, g, pid(0, 0))
	x1, y1 := cellOf(t, g, pid(1, 0))
	if x1-x0 != 6 || y1 != y0 {
		t.Errorf("neighbour cells (%d, %d) and (%d, %d)", x0, y0, x1, y1)
	}
}

func TestMouseDragConnects(t *testing.T) {
	g := newGame(t, 5, 4)

	g.Step(mouseDrag(t, g, pid(0, 0), pid(1, 0)))

	conns := g.Board().Connections()
	if len(conns) != 1 || !conns[0].Matches(pid(0, 0), pid(1, 0)) {
		t.Fatalf("connections = %v, expected (0,0)-(1,0)", conns)
	}
	if snap := g.Snapshot(); snap.Dragging || snap.Moves != 1 || snap.Cursor != pid(0, 0) {
		t.Errorf("snapshot after drag = %+v", snap)
	}
}

func TestMouseMoves(t *testing.T) {
	tests := []struct {
		name     string
		from, to board.PointID
		want     int
	}{
		{"vertical", pid(2, 1), pid(2, 2), 1},
		{"diagonal", pid(0, 0), pid(1, 1), 0},
		{"two apart", pid(0, 0), pid(2, 0), 0},
		{"same point", pid(3, 3), pid(3, 3), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, 5, 4)
			g.Step(mouseDrag(t, g, tc.from, tc.to))

			if got := len(g.Board().Connections()); got != tc.want {
				t.Errorf("got %d connections, expected %d", got, tc.want)
			}
			if _, dragging := g.Board().Drag(); dragging {
				t.Error("drag should be cleared after release")
			}
		})
	}
}

func TestMouseReleaseNearPoint(t *testing.T) {
	g := newGame(t, 5, 4)

	// One row below the target is 2 pixels away, within twice the radius.
	x0, y0 := cellOf(t, g, pid(0, 0))
	x1, y1 := cellOf(t, g, pid(1, 0))
	in := core.NewInputFrame()
	in.Push(core.PointerEvent{Kind: core.PointerDown, X: x0, Y: y0})
	in.Push(core.PointerEvent{Kind: core.PointerUp, X: x1, Y: y1 + 1})
	g.Step(in)

	if len(g.Board().Connections()) != 1 {
		t.Error("release next to a point should connect to it")
	}
}

func TestMousePressOffPoint(t *testing.T) {
	g := newGame(t, 5, 4)

	x, y := cellOf(t, g, pid(0, 0))
	in := core.NewInputFrame()
	in.Push(core.PointerEvent{Kind: core.PointerDown, X: x + 3, Y: y})
	g.Step(in)

	if _, dragging := g.Board().Drag(); dragging {
		t.Error("pressing between points should not start a drag")
	}
}

// Spacing 5 at aspect 2 puts every other row of points between two screen
// rows, so the drawn cell lies outside the point's radius.
func TestEveryDrawnPointClickable(t *testing.T) {
	for _, release := range []string{"nearest", "contain"} {
		t.Run(release, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("HOME", dir)

			path := filepath.Join(dir, "dots.yaml")
			cfg := config.DefaultDotsConfig()
			cfg.Grid = config.GridConfig{Width: 5, Height: 4}
			cfg.Surface = config.SurfaceConfig{Spacing: 5, Radius: 0.75, Aspect: 2}
			cfg.Release = release
			if err := config.SaveDots(path, cfg); err != nil {
				t.Fatalf("SaveDots: %v", err)
			}

			g := New()
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1, ConfigPath: path})
			if g.cfg.Surface.Spacing != 5 {
				t.Fatalf("config not loaded: %+v", g.cfg.Surface)
			}

			for _, p := range g.Board().Points() {
				x, y := g.CellFromSurface(p.Pos)
				press := core.NewInputFrame()
				press.Push(core.PointerEvent{Kind: core.PointerDown, X: x, Y: y})
				g.Step(press)

				if d, ok := g.Board().Drag(); !ok || d.Origin != p.ID {
					t.Errorf("press on cell (%d, %d) of point %v starts no drag", x, y, p.ID)
				}
				leave := core.NewInputFrame()
				leave.Push(core.PointerEvent{Kind: core.PointerLeave})
				g.Step(leave)
			}

			for row := 0; row < 4; row++ {
				for col := 0; col < 4; col++ {
					g.Step(mouseDrag(t, g, pid(col, row), pid(col+1, row)))
				}
			}
			if got := len(g.Board().Connections()); got != 16 {
				t.Errorf("connections = %d, expected 16 horizontal edges", got)
			}
		})
	}
}

func TestBoardRejectedConfigFallsBack(t *testing.T) {
	g := newGame(t, 3, 3)

	b := g.newBoard(board.Config{Width: 3, Height: 3})
	if b == nil {
		t.Fatal("newBoard returned nil")
	}
	if b.Width() != 5 || b.Height() != 4 || g.cfg.Surface.Spacing != 6 {
		t.Errorf("fallback board = %dx%d, spacing %v, expected defaults", b.Width(), b.Height(), g.cfg.Surface.Spacing)
	}
}

func TestPointerLeaveAbandonsDrag(t *testing.T) {
	g := newGame(t, 5, 4)

	x0, y0 := cellOf(t, g, pid(0, 0))
	x1, y1 := cellOf(t, g, pid(1, 0))
	in := core.NewInputFrame()
	in.Push(core.PointerEvent{Kind: core.PointerDown, X: x0, Y: y0})
	in.Push(core.PointerEvent{Kind: core.PointerMove, X: x1, Y: y1})
	in.Push(core.PointerEvent{Kind: core.PointerLeave})
	in.Push(core.PointerEvent{Kind: core.PointerUp, X: x1, Y: y1})
	g.Step(in)

	if len(g.Board().Connections()) != 0 {
		t.Error("leaving the surface should never commit")
	}
}

func TestKeyboardConnect(t *testing.T) {
	g := newGame(t, 5, 4)

	g.Step(keys(core.ActionConfirm))
	if snap := g.Snapshot(); !snap.Dragging || snap.Cursor != pid(0, 0) {
		t.Fatalf("confirm should grab the cursor point, snapshot = %+v", snap)
	}

	g.Step(keys(core.ActionDown))
	drag, _ := g.Board().Drag()
	target, _ := g.Board().Point(pid(0, 1))
	if drag.To != target.Pos {
		t.Errorf("drag preview should follow the cursor, to = %v", drag.To)
	}

	g.Step(keys(core.ActionConfirm))
	conns := g.Board().Connections()
	if len(conns) != 1 || !conns[0].Matches(pid(0, 0), pid(0, 1)) {
		t.Errorf("connections = %v, expected (0,0)-(0,1)", conns)
	}
}

func TestKeyboardCancel(t *testing.T) {
	g := newGame(t, 5, 4)

	g.Step(keys(core.ActionConfirm))
	g.Step(keys(core.ActionRight))
	g.Step(keys(core.ActionBack))
	g.Step(keys(core.ActionConfirm))

	if len(g.Board().Connections()) != 0 {
		t.Error("cancelled drag should not commit")
	}
	// The last confirm grabbed a new point.
	if drag, ok := g.Board().Drag(); !ok || drag.Origin != pid(1, 0) {
		t.Errorf("drag = %+v, %v", drag, ok)
	}
}

func TestCursorClamped(t *testing.T) {
	g := newGame(t, 3, 3)

	for range 5 {
		g.Step(keys(core.ActionLeft, core.ActionUp))
	}
	if g.Snapshot().Cursor != pid(0, 0) {
		t.Errorf("cursor = %v, expected (0,0)", g.Snapshot().Cursor)
	}
	for range 5 {
		g.Step(keys(core.ActionRight, core.ActionDown))
	}
	if g.Snapshot().Cursor != pid(2, 2) {
		t.Errorf("cursor = %v, expected (2,2)", g.Snapshot().Cursor)
	}
}

func completeSquare(t *testing.T, g *Game) {
	t.Helper()
	in := core.NewInputFrame()
	appendDrag(t, g, &in, pid(0, 0), pid(1, 0))
	appendDrag(t, g, &in, pid(1, 0), pid(1, 1))
	appendDrag(t, g, &in, pid(1, 1), pid(0, 1))
	appendDrag(t, g, &in, pid(0, 1), pid(0, 0))
	g.Step(in)
}

func TestCompleteBoardAndRestart(t *testing.T) {
	g := newGame(t, 2, 2)

	completeSquare(t, g)

	state := g.State()
	if !state.GameOver || state.Score != 1 {
		t.Fatalf("state = %+v, expected game over with 1 square", state)
	}
	if g.Snapshot().State != StateComplete {
		t.Errorf("snapshot state = %q", g.Snapshot().State)
	}
	if sum := g.Summary(); sum != (core.RoundSummary{Width: 2, Height: 2, Squares: 1, Connections: 4}) {
		t.Errorf("Summary() = %+v", sum)
	}

	g.Step(keys(core.ActionRestart))
	state = g.State()
	if state.GameOver || state.Score != 0 {
		t.Errorf("after restart state = %+v", state)
	}
	if g.Board().Width() != 2 || g.Board().Height() != 2 {
		t.Errorf("restart should keep the grid, got %dx%d", g.Board().Width(), g.Board().Height())
	}
}

func TestRestartIgnoredMidRound(t *testing.T) {
	g := newGame(t, 3, 3)

	g.Step(mouseDrag(t, g, pid(0, 0), pid(1, 0)))
	g.Step(keys(core.ActionRestart))

	if len(g.Board().Connections()) != 1 {
		t.Error("restart should only apply to a complete board")
	}
}

func TestSquareTextDeterministic(t *testing.T) {
	g1 := newGame(t, 2, 2)
	g2 := newGame(t, 2, 2)

	completeSquare(t, g1)
	completeSquare(t, g2)

	s1, s2 := g1.Board().Squares(), g2.Board().Squares()
	if len(s1) != 1 || len(s2) != 1 || s1[0].Text != s2[0].Text {
		t.Errorf("same seed should label squares the same: %v vs %v", s1, s2)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newGame(t, 5, 4)

	g.Step(keys(core.ActionPause))
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Fatal("game should be paused")
	}

	g.Step(mouseDrag(t, g, pid(0, 0), pid(1, 0)))
	if len(g.Board().Connections()) != 0 {
		t.Error("input should be ignored while paused")
	}

	g.Step(keys(core.ActionPause))
	g.Step(mouseDrag(t, g, pid(0, 0), pid(1, 0)))
	if len(g.Board().Connections()) != 1 {
		t.Error("input should work after unpausing")
	}
}

func TestTooSmallAndResize(t *testing.T) {
	g := newGame(t, 5, 4)
	g.Step(mouseDrag(t, g, pid(0, 0), pid(1, 0)))

	g.Resize(20, 10)
	if g.Snapshot().State != StatePausedSmall || !g.State().Paused {
		t.Fatalf("state = %q, expected too small", g.Snapshot().State)
	}

	g.Resize(100, 30)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state = %q after enlarging", g.Snapshot().State)
	}
	if len(g.Board().Connections()) != 1 {
		t.Error("resizing should keep the board")
	}

	g.Step(mouseDrag(t, g, pid(1, 0), pid(2, 0)))
	if len(g.Board().Connections()) != 2 {
		t.Error("mouse mapping should follow the new layout")
	}
}

func TestMinScreen(t *testing.T) {
	g := newGame(t, 5, 4)

	w, h := g.MinScreen()
	g.Resize(w, h)
	if g.Snapshot().State == StatePausedSmall {
		t.Errorf("board should fit in %dx%d", w, h)
	}
	g.Resize(w-1, h)
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("board should not fit in %dx%d", w-1, h)
	}
}

func TestGridGrowShrink(t *testing.T) {
	g := newGame(t, 5, 4)
	g.Step(mouseDrag(t, g, pid(0, 0), pid(1, 0)))

	g.Step(keys(core.ActionGridGrow))
	if g.Board().Width() != 6 || g.Board().Height() != 5 {
		t.Fatalf("grid = %dx%d after grow", g.Board().Width(), g.Board().Height())
	}
	if snap := g.Snapshot(); len(snap.Board.Connections) != 0 || snap.Moves != 0 {
		t.Error("changing the grid should discard the board")
	}

	for range 10 {
		g.Step(keys(core.ActionGridShrink))
	}
	if g.Board().Width() != 2 || g.Board().Height() != 2 {
		t.Errorf("grid = %dx%d, expected the 2x2 minimum", g.Board().Width(), g.Board().Height())
	}
}

func TestGridShrinkFixesTooSmall(t *testing.T) {
	g := newGame(t, 8, 6)
	g.Resize(40, 20)
	if g.Snapshot().State != StatePausedSmall {
		t.Fatal("8x6 should not fit 40x20")
	}

	for range 4 {
		g.Step(keys(core.ActionGridShrink))
	}
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state = %q after shrinking to %dx%d", g.Snapshot().State, g.Board().Width(), g.Board().Height())
	}
}

func TestPresetApplied(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, Preset: "large"})
	if g.Board().Width() != 8 || g.Board().Height() != 6 {
		t.Errorf("large preset grid = %dx%d", g.Board().Width(), g.Board().Height())
	}

	g.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, Preset: "large", GridW: 3})
	if g.Board().Width() != 3 || g.Board().Height() != 6 {
		t.Errorf("explicit width should win over the preset, grid = %dx%d", g.Board().Width(), g.Board().Height())
	}
}

func TestBrokenConfigFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, ConfigPath: "/nonexistent/dots.yaml"})
	if g.Board().Width() != 5 || g.Board().Height() != 4 {
		t.Errorf("grid = %dx%d, expected defaults", g.Board().Width(), g.Board().Height())
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, 3, 3)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if n := strings.Count(screen.String(), string(runePoint)); n != 9 {
		t.Errorf("rendered %d points, expected 9", n)
	}
	if !strings.Contains(screen.Row(0), "Squares 0/4") {
		t.Errorf("HUD = %q", screen.Row(0))
	}

	completeSquare(t, g)
	g.Render(screen)

	x0, y0 := cellOf(t, g, pid(0, 0))
	if screen.Get(x0+1, y0) != runeHLine {
		t.Errorf("expected a horizontal connection right of (0,0), got %q", screen.Get(x0+1, y0))
	}
	if screen.Get(x0, y0+1) != runeVLine {
		t.Errorf("expected a vertical connection below (0,0), got %q", screen.Get(x0, y0+1))
	}

	text := g.Board().Squares()[0].Text
	found := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y); c.Rune == text && c.Color == core.ColorBrightWhite {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("square text %q not rendered", text)
	}
}

func TestRenderDragAndCursor(t *testing.T) {
	g := newGame(t, 3, 3)
	screen := core.NewScreen(80, 24)

	x0, y0 := cellOf(t, g, pid(1, 1))
	in := core.NewInputFrame()
	in.Push(core.PointerEvent{Kind: core.PointerDown, X: x0, Y: y0})
	in.Push(core.PointerEvent{Kind: core.PointerMove, X: x0 + 4, Y: y0})
	g.Step(in)
	g.Render(screen)

	if c := screen.GetCell(x0, y0); c.Rune != runePoint || c.Color != core.ColorBrightCyan {
		t.Errorf("drag origin cell = %+v", c)
	}
	if screen.Get(x0+2, y0) != runeDragTrail {
		t.Errorf("expected a drag preview, got %q", screen.Get(x0+2, y0))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, 5, 4)
	g.Resize(30, 12)

	screen := core.NewScreen(30, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too small overlay missing")
	}
	if strings.Contains(screen.String(), string(runePoint)) {
		t.Error("points should not be drawn on a too small screen")
	}
}
