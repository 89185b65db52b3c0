package tetris

import "iter"

// Piece is the active, falling tetromino: its kind, current orientation and the
// board position of its bounding matrix's top-left cell.
type Piece struct {
	Kind   Kind
	Shape  Shape
	Anchor Point
}

// Cells yields the board coordinates of every occupied cell of the piece.
func (p Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for off := range p.Shape.Cells() {
			if !yield(p.Anchor.Add(off)) {
				return
			}
		}
	}
}

// Translated returns the piece moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.Anchor = p.Anchor.Add(Point{X: dx, Y: dy})
	return p
}

// Rotated returns the piece turned in place about its anchor.
func (p Piece) Rotated(policy RotationPolicy, dir Direction) Piece {
	p.Shape = RotateWith(policy, p.Shape, dir)
	return p
}
