package board

// Segment is a line between two surface positions.
type Segment struct {
	From Pos
	To   Pos
}

// SquareView is a completed square ready for drawing.
type SquareView struct {
	ID      PointID // top-left point
	TopLeft Pos
	Center  Pos
	Text    rune
}

// Snapshot is an immutable copy of everything a renderer needs.
type Snapshot struct {
	Points      []Point
	Connections []Segment
	Drag        *Segment // nil when idle
	Squares     []SquareView
}

// Snapshot copies the current board state for drawing.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		Points:      b.Points(),
		Connections: make([]Segment, 0, len(b.connections)),
		Squares:     make([]SquareView, 0, len(b.squares)),
	}

	for _, c := range b.connections {
		from, okA := b.Point(c.A)
		to, okB := b.Point(c.B)
		if !okA || !okB {
			continue
		}
		snap.Connections = append(snap.Connections, Segment{From: from.Pos, To: to.Pos})
	}

	if b.drag != nil {
		snap.Drag = &Segment{From: b.drag.From, To: b.drag.To}
	}

	half := b.cfg.Spacing / 2
	for _, s := range b.squares {
		tl, ok := b.Point(s.TopLeft)
		if !ok {
			continue
		}
		snap.Squares = append(snap.Squares, SquareView{
			ID:      s.TopLeft,
			TopLeft: tl.Pos,
			Center:  Pos{X: tl.Pos.X + half, Y: tl.Pos.Y + half},
			Text:    s.Text,
		})
	}

	return snap
}
