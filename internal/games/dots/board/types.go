// Package board models a dots-and-boxes grid: the points, the connections
// drawn between adjacent points, the drag in progress and the unit squares
// closed so far.
//
// The package is pure game logic. It knows nothing about terminals, mice or
// storage; the platform feeds it pointer events in surface-local pixel
// coordinates and draws from immutable snapshots.
package board

import (
	"fmt"
	"math"
)

// PointID identifies a point by its grid coordinate.
type PointID struct {
	Col int
	Row int
}

// String renders the id as "col-row".
func (id PointID) String() string {
	return fmt.Sprintf("%d-%d", id.Col, id.Row)
}

// Pos is a position on the drawing surface, in pixels.
type Pos struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between two positions.
func (p Pos) Dist(q Pos) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Point is a grid point and its pixel position. Points never change after
// the grid is generated.
type Point struct {
	ID  PointID
	Pos Pos
}

// Connection is an unordered pair of adjacent points.
type Connection struct {
	A PointID
	B PointID
}

// Matches reports whether the connection joins a and b, in either order.
func (c Connection) Matches(a, b PointID) bool {
	return (c.A == a && c.B == b) || (c.A == b && c.B == a)
}

// Drag is the pointer drag currently in flight.
type Drag struct {
	Origin PointID
	From   Pos // origin point position
	To     Pos // current pointer position
}

// Square is a completed unit square, identified by its top-left point.
type Square struct {
	TopLeft PointID
	Text    rune
}

// ReleasePolicy selects how a pointer release is resolved to a point.
type ReleasePolicy int

const (
	// ReleaseNearest picks the closest point, accepted within twice the
	// point radius.
	ReleaseNearest ReleasePolicy = iota

	// ReleaseContain picks the first point whose radius contains the release.
	ReleaseContain
)

// String returns the policy name used in configuration files.
func (p ReleasePolicy) String() string {
	switch p {
	case ReleaseNearest:
		return "nearest"
	case ReleaseContain:
		return "contain"
	default:
		return "unknown"
	}
}

// ParseReleasePolicy converts a configuration name into a policy.
// An empty name selects ReleaseNearest.
func ParseReleasePolicy(name string) (ReleasePolicy, error) {
	switch name {
	case "", "nearest":
		return ReleaseNearest, nil
	case "contain":
		return ReleaseContain, nil
	default:
		return ReleaseNearest, fmt.Errorf("board: unknown release policy %q", name)
	}
}

// RejectReason explains why a move produced no connection.
// Rejections are silent in play; the reason exists for logs and tests.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectNoDrag
	RejectNoTarget
	RejectSelf
	RejectNotAdjacent
	RejectDuplicate
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectNoDrag:
		return "no drag"
	case RejectNoTarget:
		return "no target"
	case RejectSelf:
		return "same point"
	case RejectNotAdjacent:
		return "not adjacent"
	case RejectDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// MoveResult reports the outcome of a release or a direct connect.
type MoveResult struct {
	Committed  bool
	Connection Connection
	Squares    []Square // squares completed by this connection
	Reason     RejectReason
}

// TextSource supplies the randomness for square labels.
// *math/rand.Rand satisfies it.
type TextSource interface {
	Intn(n int) int
}
