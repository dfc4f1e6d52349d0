package board

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// detectSquares scans every unit square against conns and records the ones
// whose four edges are present and that were not completed before. The new
// squares are appended together once the scan is over, so one connection
// can close two squares at once.
func (b *Board) detectSquares(conns []Connection) []Square {
	var found []Square

	for y := 0; y < b.cfg.Height-1; y++ {
		for x := 0; x < b.cfg.Width-1; x++ {
			tl := PointID{Col: x, Row: y}
			tr := PointID{Col: x + 1, Row: y}
			bl := PointID{Col: x, Row: y + 1}
			br := PointID{Col: x + 1, Row: y + 1}

			if !ConnectionExists(tl, tr, conns) ||
				!ConnectionExists(tr, br, conns) ||
				!ConnectionExists(bl, br, conns) ||
				!ConnectionExists(tl, bl, conns) {
				continue
			}

			if hasSquare(b.squares, tl) || hasSquare(found, tl) {
				continue
			}
			found = append(found, Square{TopLeft: tl, Text: b.randomText()})
		}
	}

	b.squares = append(b.squares, found...)
	return found
}

func hasSquare(list []Square, topLeft PointID) bool {
	for _, s := range list {
		if s.TopLeft == topLeft {
			return true
		}
	}
	return false
}

func (b *Board) randomText() rune {
	return rune(alphabet[b.src.Intn(len(alphabet))])
}
