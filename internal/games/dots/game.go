// Package dots adapts the dots-and-boxes board to the platform: it maps
// screen cells to surface pixels, turns pointer events and keyboard actions
// into board operations, and draws the board into a core.Screen.
package dots

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/games/dots/board"
	"github.com/vovakirdan/tui-dots/internal/registry"
)

// GameID is the registry and score-store identifier.
const GameID = "dots"

const (
	hudHeight    = 2 // title line and separator
	footerHeight = 1 // control hints
)

// Game implements registry.Game for Dots & Boxes.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.DotsConfig
	board   *board.Board
	rng     *rand.Rand
	logger  *log.Logger
	tick    uint64

	// Layout: screen cell of surface pixel (0, 0).
	screenW int
	screenH int
	originX int
	originY int
	area    core.Rect // cells covered by the surface

	cursor board.PointID
	moves  int

	paused   bool
	tooSmall bool
}

// New creates a Dots & Boxes game. Call Reset before use.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Dots & Boxes" }

// SetLogger routes game events to l. A nil logger silences them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset loads the configuration and starts a fresh board.
// A broken config file is logged and replaced by the defaults.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moves = 0
	g.paused = false
	g.cursor = board.PointID{}

	g.cfg = loadConfig(cfg, g.logger)

	bc, err := g.cfg.BoardConfig()
	if err != nil {
		g.logger.Warn("invalid board config, using defaults", "err", err)
		g.cfg = config.DefaultDotsConfig()
		bc, _ = g.cfg.BoardConfig()
	}

	g.board = g.newBoard(bc)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout()

	g.logger.Debug("board ready", "grid", gridLabel(g.board.Width(), g.board.Height()), "release", g.board.Config().Release)
}

// newBoard builds a board from bc. A config the board rejects is logged and
// replaced by the defaults.
func (g *Game) newBoard(bc board.Config) *board.Board {
	b, err := board.New(bc, g.rng)
	if err == nil {
		return b
	}
	g.logger.Warn("board rejected config, using defaults", "err", err)
	g.cfg = config.DefaultDotsConfig()
	bc, _ = g.cfg.BoardConfig()
	b, _ = board.New(bc, g.rng)
	return b
}

func loadConfig(rc core.RuntimeConfig, logger *log.Logger) config.DotsConfig {
	cfg, err := config.LoadDots(rc.ConfigPath)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "path", rc.ConfigPath, "err", err)
		cfg = config.DefaultDotsConfig()
	}

	if rc.Preset != "" {
		preset, err := config.ParsePreset(rc.Preset)
		if err != nil {
			logger.Warn("ignoring preset", "err", err)
		} else {
			config.ApplyDotsPreset(&cfg, preset)
		}
	}

	if rc.GridW > 0 {
		cfg.Grid.Width = rc.GridW
	}
	if rc.GridH > 0 {
		cfg.Grid.Height = rc.GridH
	}
	return cfg
}

// Resize follows a terminal resize. The board is kept.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.layout()
}

// layout centers the surface in the play area below the HUD.
func (g *Game) layout() {
	w, h := g.surfaceCells()
	areaH := g.screenH - hudHeight - footerHeight

	g.tooSmall = w > g.screenW || h > areaH
	if g.tooSmall {
		// A drag cannot continue on a board that is not drawn.
		g.board.PointerLeave()
		return
	}
	g.originX = (g.screenW - w) / 2
	g.originY = hudHeight + (areaH-h)/2
	g.area = core.NewRect(g.originX, g.originY, w, h)
}

// surfaceCells returns the surface size in screen cells.
func (g *Game) surfaceCells() (int, int) {
	sw, sh := g.board.Surface()
	return int(math.Ceil(sw)) + 1, int(math.Ceil(sh/g.cfg.Surface.Aspect)) + 1
}

// MinScreen returns the smallest screen that fits the current board.
func (g *Game) MinScreen() (int, int) {
	w, h := g.surfaceCells()
	return w, h + hudHeight + footerHeight
}

// SurfaceFromCell converts a screen cell to a surface pixel position.
func (g *Game) SurfaceFromCell(x, y int) board.Pos {
	return board.Pos{
		X: float64(x - g.originX),
		Y: float64(y-g.originY) * g.cfg.Surface.Aspect,
	}
}

// CellFromSurface converts a surface pixel position to the nearest screen cell.
func (g *Game) CellFromSurface(p board.Pos) (int, int) {
	return g.originX + core.Round(p.X), g.originY + core.Round(p.Y/g.cfg.Surface.Aspect)
}

// Step consumes one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.board.Complete() {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.board.Complete() {
		g.paused = !g.paused
		if g.paused {
			g.board.PointerLeave()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Grid changes are allowed while too small, they may make the board fit.
	switch {
	case in.Has(core.ActionGridGrow):
		g.regrid(1)
	case in.Has(core.ActionGridShrink):
		g.regrid(-1)
	}

	if in.Empty() || g.tooSmall || g.board.Complete() {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}
	g.handleKeys(in)

	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	rc := g.runtime
	rc.Seed = g.rng.Int63()
	rc.GridW = g.board.Width()
	rc.GridH = g.board.Height()
	g.Reset(rc)
}

// regrid grows or shrinks the grid by delta in both directions. The board is
// rebuilt, so every connection and square is discarded.
func (g *Game) regrid(delta int) {
	w := core.Clamp(g.board.Width()+delta, config.MinGridSize, config.MaxGridSize)
	h := core.Clamp(g.board.Height()+delta, config.MinGridSize, config.MaxGridSize)
	if w == g.board.Width() && h == g.board.Height() {
		return
	}
	if err := g.board.Reconfigure(w, h); err != nil {
		g.logger.Warn("grid change rejected", "grid", gridLabel(w, h), "err", err)
		return
	}

	g.cfg.Grid.Width = w
	g.cfg.Grid.Height = h
	g.moves = 0
	g.cursor = board.PointID{
		Col: core.Min(g.cursor.Col, w-1),
		Row: core.Min(g.cursor.Row, h-1),
	}
	g.layout()
	g.logger.Debug("grid changed", "grid", gridLabel(w, h))
}

// surfaceAt maps a screen cell to a surface position. The cell a point is
// drawn on maps to the point's center, since rounding to cells can put the
// cell itself outside the point's radius.
func (g *Game) surfaceAt(x, y int) board.Pos {
	if g.area.Contains(x, y) {
		for _, p := range g.board.Points() {
			if cx, cy := g.CellFromSurface(p.Pos); cx == x && cy == y {
				return p.Pos
			}
		}
	}
	return g.SurfaceFromCell(x, y)
}

func (g *Game) handlePointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerDown:
		at := g.surfaceAt(ev.X, ev.Y)
		if p, ok := g.board.PointAt(at.X, at.Y); ok {
			g.board.PointerDown(p.ID)
			g.cursor = p.ID
		}
	case core.PointerMove:
		at := g.surfaceAt(ev.X, ev.Y)
		g.board.PointerMove(at.X, at.Y)
	case core.PointerUp:
		at := g.surfaceAt(ev.X, ev.Y)
		g.apply(g.board.PointerUp(at.X, at.Y))
	case core.PointerLeave:
		g.board.PointerLeave()
	}
}

// handleKeys drives the board with a cursor: Confirm grabs the point under
// the cursor, moving drags the preview, Confirm again releases on the
// cursor point.
func (g *Game) handleKeys(in core.InputFrame) {
	moved := false
	for _, m := range []struct {
		action     core.Action
		dCol, dRow int
	}{
		{core.ActionUp, 0, -1},
		{core.ActionDown, 0, 1},
		{core.ActionLeft, -1, 0},
		{core.ActionRight, 1, 0},
	} {
		if in.Has(m.action) {
			g.cursor.Col = core.Clamp(g.cursor.Col+m.dCol, 0, g.board.Width()-1)
			g.cursor.Row = core.Clamp(g.cursor.Row+m.dRow, 0, g.board.Height()-1)
			moved = true
		}
	}

	p, _ := g.board.Point(g.cursor)
	_, dragging := g.board.Drag()

	if moved && dragging {
		g.board.PointerMove(p.Pos.X, p.Pos.Y)
	}

	switch {
	case in.Has(core.ActionConfirm) && dragging:
		g.apply(g.board.PointerUp(p.Pos.X, p.Pos.Y))
	case in.Has(core.ActionConfirm):
		g.board.PointerDown(g.cursor)
	case in.Has(core.ActionBack) && dragging:
		g.board.PointerLeave()
	}
}

func (g *Game) apply(res board.MoveResult) {
	if !res.Committed {
		if res.Reason != board.RejectNoDrag {
			g.logger.Debug("move ignored", "reason", res.Reason)
		}
		return
	}

	g.moves++
	g.logger.Debug("connected", "a", res.Connection.A, "b", res.Connection.B)
	for _, sq := range res.Squares {
		g.logger.Info("square completed", "at", sq.TopLeft, "text", string(sq.Text))
	}
	if g.board.Complete() {
		g.logger.Info("board complete", "grid", gridLabel(g.board.Width(), g.board.Height()),
			"squares", len(g.board.Squares()), "moves", g.moves)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    len(g.board.Squares()),
		GameOver: g.board.Complete(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Summary describes the round for the score store.
func (g *Game) Summary() core.RoundSummary {
	return core.RoundSummary{
		Width:       g.board.Width(),
		Height:      g.board.Height(),
		Squares:     len(g.board.Squares()),
		Connections: len(g.board.Connections()),
	}
}

// Board exposes the underlying board for inspection.
func (g *Game) Board() *board.Board { return g.board }
