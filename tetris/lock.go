package tetris

// Lock writes every occupied cell of piece into board, tagged with the piece's
// kind. Cells above row 0 have nowhere to go; they are skipped and counted in
// the returned hidden total. Lock must only follow a failed downward check, so
// no cell can land outside the board's columns or below its floor.
func Lock(board *Board, piece Piece) (hidden int) {
	for p := range piece.Cells() {
		if p.Y < 0 {
			hidden++
			continue
		}
		board.Set(p.X, p.Y, piece.Kind)
	}
	return hidden
}

// ClearLines removes every full row and returns how many were removed. The
// scan runs bottom-to-top and re-examines a row index after a removal, since
// the row above has slid into it. Surviving rows keep their relative order.
func ClearLines(board *Board) int {
	cleared := 0
	for row := board.Rows() - 1; row >= 0; {
		if board.RowFull(row) {
			board.ClearRow(row)
			cleared++
			continue
		}
		row--
	}
	return cleared
}

// Scorer turns cleared lines into points and levels.
type Scorer struct {
	LinePoints    int
	LinesPerLevel int
}

// Points returns the score for clearing lines rows in one lock.
func (s Scorer) Points(lines int) int {
	return lines * s.LinePoints
}

// Level returns the 1-based level reached after totalLines cleared lines.
func (s Scorer) Level(totalLines int) int {
	if s.LinesPerLevel <= 0 {
		return 1
	}
	return totalLines/s.LinesPerLevel + 1
}
