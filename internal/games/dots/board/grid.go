package board

import "github.com/vovakirdan/tui-dots/internal/core"

// GeneratePoints lays out width*height points in row-major order.
// Each coordinate maps to pixel = coord*spacing + spacing.
func GeneratePoints(width, height int, spacing float64) []Point {
	if width <= 0 || height <= 0 {
		return nil
	}

	points := make([]Point, 0, width*height)
	for y := range height {
		for x := range width {
			points = append(points, Point{
				ID: PointID{Col: x, Row: y},
				Pos: Pos{
					X: float64(x)*spacing + spacing,
					Y: float64(y)*spacing + spacing,
				},
			})
		}
	}
	return points
}

// AreAdjacent reports whether a and b are one grid step apart along exactly
// one axis. Diagonal neighbours are not adjacent.
func AreAdjacent(a, b PointID) bool {
	dx := core.Abs(a.Col - b.Col)
	dy := core.Abs(a.Row - b.Row)
	return (dx == 1 && dy == 0) || (dx == 0 && dy == 1)
}

// ConnectionExists reports whether list holds a connection between a and b
// in either order.
func ConnectionExists(a, b PointID, list []Connection) bool {
	for _, c := range list {
		if c.Matches(a, b) {
			return true
		}
	}
	return false
}
