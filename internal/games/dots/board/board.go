package board

import (
	"fmt"
	"math/rand"
)

// Config describes a board. Width and Height count points, not squares.
type Config struct {
	Width   int
	Height  int
	Spacing float64 // pixels between neighbouring points
	Radius  float64 // visual point radius in pixels
	Release ReleasePolicy
}

// Validate checks that the configuration describes a drawable grid.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board: grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("board: spacing must be positive, got %v", c.Spacing)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("board: radius must be positive, got %v", c.Radius)
	}
	if c.Release != ReleaseNearest && c.Release != ReleaseContain {
		return fmt.Errorf("board: unknown release policy %d", c.Release)
	}
	return nil
}

// Board owns the points, connections, drag state and completed squares.
// It is driven from a single event loop and is not safe for concurrent use.
type Board struct {
	cfg         Config
	src         TextSource
	points      []Point
	index       map[PointID]int
	connections []Connection
	drag        *Drag
	squares     []Square
}

// New creates a board with freshly generated points.
// A nil src falls back to the math/rand global source.
func New(cfg Config, src TextSource) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = globalSource{}
	}

	b := &Board{cfg: cfg, src: src}
	b.layout()
	return b, nil
}

// Reconfigure changes the grid dimensions. The point set is replaced and
// every connection, square and drag is discarded with it.
func (b *Board) Reconfigure(width, height int) error {
	cfg := b.cfg
	cfg.Width = width
	cfg.Height = height
	if err := cfg.Validate(); err != nil {
		return err
	}

	b.cfg = cfg
	b.layout()
	return nil
}

func (b *Board) layout() {
	b.points = GeneratePoints(b.cfg.Width, b.cfg.Height, b.cfg.Spacing)
	b.index = make(map[PointID]int, len(b.points))
	for i, p := range b.points {
		b.index[p.ID] = i
	}
	b.connections = nil
	b.squares = nil
	b.drag = nil
}

// Config returns the board configuration.
func (b *Board) Config() Config { return b.cfg }

// Width returns the number of point columns.
func (b *Board) Width() int { return b.cfg.Width }

// Height returns the number of point rows.
func (b *Board) Height() int { return b.cfg.Height }

// Surface returns the pixel size of the drawing surface.
func (b *Board) Surface() (w, h float64) {
	return float64(b.cfg.Width)*b.cfg.Spacing + b.cfg.Spacing,
		float64(b.cfg.Height)*b.cfg.Spacing + b.cfg.Spacing
}

// Point looks up a point by id.
func (b *Board) Point(id PointID) (Point, bool) {
	i, ok := b.index[id]
	if !ok {
		return Point{}, false
	}
	return b.points[i], true
}

// Points returns a copy of the points in row-major order.
func (b *Board) Points() []Point {
	return append([]Point(nil), b.points...)
}

// Connections returns a copy of the committed connections in commit order.
func (b *Board) Connections() []Connection {
	return append([]Connection(nil), b.connections...)
}

// Squares returns a copy of the completed squares in completion order.
func (b *Board) Squares() []Square {
	return append([]Square(nil), b.squares...)
}

// Drag returns the drag in flight, or false when idle.
func (b *Board) Drag() (Drag, bool) {
	if b.drag == nil {
		return Drag{}, false
	}
	return *b.drag, true
}

// TotalSquares returns how many unit squares the grid has.
func (b *Board) TotalSquares() int {
	if b.cfg.Width < 2 || b.cfg.Height < 2 {
		return 0
	}
	return (b.cfg.Width - 1) * (b.cfg.Height - 1)
}

// TotalConnections returns how many connections the grid can hold.
func (b *Board) TotalConnections() int {
	return (b.cfg.Width-1)*b.cfg.Height + b.cfg.Width*(b.cfg.Height-1)
}

// Complete reports whether every possible connection has been drawn.
func (b *Board) Complete() bool {
	return len(b.connections) == b.TotalConnections()
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }
