package tetris

// IsValid reports whether shape can sit at anchor on board. A placement is
// invalid when any occupied cell lands outside [0, cols), at or below the floor,
// or on an occupied cell. Cells above row 0 are accepted.
//
// IsValid never mutates its arguments.
func IsValid(board *Board, shape Shape, anchor Point) bool {
	return Validator{AllowAboveTop: true}.Valid(board, shape, anchor)
}

// Validator is the collision check every movement, rotation, gravity step and
// spawn runs before touching the active piece.
type Validator struct {
	// AllowAboveTop treats cells with a negative row as legal. When false those
	// cells make the placement invalid.
	AllowAboveTop bool
}

// Valid reports whether shape can sit at anchor on board.
func (v Validator) Valid(board *Board, shape Shape, anchor Point) bool {
	for off := range shape.Cells() {
		x := anchor.X + off.X
		y := anchor.Y + off.Y

		if x < 0 || x >= board.Cols() || y >= board.Rows() {
			return false
		}

		if y < 0 {
			if v.AllowAboveTop {
				continue
			}
			return false
		}

		if board.Occupied(x, y) {
			return false
		}
	}

	return true
}

// Fits reports whether piece can sit where it is.
func (v Validator) Fits(board *Board, piece Piece) bool {
	return v.Valid(board, piece.Shape, piece.Anchor)
}

// DropDistance returns how many rows piece can descend before the next step
// would be invalid.
func (v Validator) DropDistance(board *Board, piece Piece) int {
	n := 0
	for v.Valid(board, piece.Shape, piece.Anchor.Add(Point{Y: n + 1})) {
		n++
	}
	return n
}
