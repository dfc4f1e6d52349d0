package board

import "math"

// PointerDown starts a drag from the given point. A drag already in flight
// is replaced. Unknown ids are ignored and return false.
func (b *Board) PointerDown(id PointID) bool {
	p, ok := b.Point(id)
	if !ok {
		return false
	}
	b.drag = &Drag{Origin: id, From: p.Pos, To: p.Pos}
	return true
}

// PointerMove updates the pointer position of the drag in flight.
// It does nothing while idle.
func (b *Board) PointerMove(x, y float64) {
	if b.drag == nil {
		return
	}
	b.drag.To = Pos{X: x, Y: y}
}

// PointerUp ends the drag. When the release resolves to a valid neighbour of
// the origin the connection is committed and square detection runs. The drag
// is cleared whether or not anything was committed.
func (b *Board) PointerUp(x, y float64) MoveResult {
	drag := b.drag
	b.drag = nil

	if drag == nil {
		return MoveResult{Reason: RejectNoDrag}
	}

	target, ok := b.ResolveTarget(x, y)
	if !ok {
		return MoveResult{Reason: RejectNoTarget}
	}
	return b.Connect(drag.Origin, target.ID)
}

// PointerLeave abandons the drag without committing.
func (b *Board) PointerLeave() {
	b.drag = nil
}

// Connect commits a connection between a and b if it is valid: both points
// exist, they differ, they are adjacent and not already connected.
// Invalid moves leave the board untouched.
func (b *Board) Connect(a, c PointID) MoveResult {
	if _, ok := b.index[a]; !ok {
		return MoveResult{Reason: RejectNoTarget}
	}
	if _, ok := b.index[c]; !ok {
		return MoveResult{Reason: RejectNoTarget}
	}
	if a == c {
		return MoveResult{Reason: RejectSelf}
	}
	if !AreAdjacent(a, c) {
		return MoveResult{Reason: RejectNotAdjacent}
	}
	if ConnectionExists(a, c, b.connections) {
		return MoveResult{Reason: RejectDuplicate}
	}

	conn := Connection{A: a, B: c}
	b.connections = append(b.connections, conn)

	return MoveResult{
		Committed:  true,
		Connection: conn,
		Squares:    b.detectSquares(b.connections),
	}
}

// ResolveTarget maps a release position to a point using the board's
// release policy.
func (b *Board) ResolveTarget(x, y float64) (Point, bool) {
	if b.cfg.Release == ReleaseContain {
		return b.PointAt(x, y)
	}
	return b.nearest(Pos{X: x, Y: y}, 2*b.cfg.Radius)
}

// PointAt returns the first point whose radius contains (x, y).
func (b *Board) PointAt(x, y float64) (Point, bool) {
	at := Pos{X: x, Y: y}
	for _, p := range b.points {
		if p.Pos.Dist(at) <= b.cfg.Radius {
			return p, true
		}
	}
	return Point{}, false
}

// nearest returns the closest point to at, provided it lies within limit.
// Ties keep the earliest point in row-major order.
func (b *Board) nearest(at Pos, limit float64) (Point, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range b.points {
		if d := p.Pos.Dist(at); d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 || bestDist > limit {
		return Point{}, false
	}
	return b.points[best], true
}
