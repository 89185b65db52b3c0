package tetris

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Point is a board coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Shape is an immutable rectangular matrix of occupied/empty cells describing one
// piece in one orientation. Shapes are values; every transform returns a new Shape.
type Shape struct {
	rows, cols int
	cells      []bool
}

// NewShape builds a Shape from row-major rows. Every row must have the same,
// non-zero length.
func NewShape(rows [][]bool) (Shape, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Shape{}, fmt.Errorf("%w: shape has no cells", ErrMalformedShape)
	}

	cols := len(rows[0])
	cells := make([]bool, 0, len(rows)*cols)
	for r, row := range rows {
		if len(row) != cols {
			return Shape{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedShape, r, len(row), cols)
		}
		cells = append(cells, row...)
	}
	if !slices.Contains(cells, true) {
		return Shape{}, fmt.Errorf("%w: shape has no occupied cells", ErrMalformedShape)
	}

	return Shape{rows: len(rows), cols: cols, cells: cells}, nil
}

// MustShape parses a shape drawn with '#' for occupied and '.' for empty cells,
// one string per row. It panics on malformed input and is meant for static tables.
func MustShape(rows ...string) Shape {
	matrix := make([][]bool, len(rows))
	for r, row := range rows {
		matrix[r] = make([]bool, len(row))
		for c, ch := range row {
			matrix[r][c] = ch == '#'
		}
	}

	shape, err := NewShape(matrix)
	if err != nil {
		panic(err)
	}
	return shape
}

// Rows returns the height of the bounding matrix.
func (s Shape) Rows() int { return s.rows }

// Cols returns the width of the bounding matrix.
func (s Shape) Cols() int { return s.cols }

// Empty reports whether s is the zero Shape.
func (s Shape) Empty() bool { return s.rows == 0 }

// At reports whether the cell at row r, column c is occupied.
func (s Shape) At(r, c int) bool {
	return s.cells[r*s.cols+c]
}

// Cells yields the offset of every occupied cell relative to the top-left of the
// bounding matrix, in row-major order.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i, occupied := range s.cells {
			if !occupied {
				continue
			}
			if !yield(Point{X: i % s.cols, Y: i / s.cols}) {
				return
			}
		}
	}
}

// Matrix returns a copy of the shape as row-major rows.
func (s Shape) Matrix() [][]bool {
	out := make([][]bool, s.rows)
	for r := range s.rows {
		out[r] = make([]bool, s.cols)
		copy(out[r], s.cells[r*s.cols:(r+1)*s.cols])
	}
	return out
}

// Equal reports whether s and o have the same dimensions and occupancy.
func (s Shape) Equal(o Shape) bool {
	if s.rows != o.rows || s.cols != o.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	var b strings.Builder
	for r := range s.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := range s.cols {
			if s.At(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Direction selects a rotation sense.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// RotationPolicy selects the matrix transform used for rotations.
type RotationPolicy string

const (
	// RotationMatrix is a true quarter turn: clockwise reads each column
	// bottom-to-top, counter-clockwise reads each column top-to-bottom starting
	// from the rightmost one.
	RotationMatrix RotationPolicy = "rotate"
	// RotationTranspose swaps rows and columns regardless of direction. It only
	// ever reaches two orientations per piece.
	RotationTranspose RotationPolicy = "transpose"
)

// Valid reports whether p names a known policy.
func (p RotationPolicy) Valid() bool {
	return p == RotationMatrix || p == RotationTranspose
}

// Rotate returns s turned a quarter in the given direction. The bounding
// dimensions swap for non-square shapes.
func Rotate(s Shape, dir Direction) Shape {
	return RotateWith(RotationMatrix, s, dir)
}

// RotateWith applies the transform selected by policy.
func RotateWith(policy RotationPolicy, s Shape, dir Direction) Shape {
	out := Shape{rows: s.cols, cols: s.rows, cells: make([]bool, len(s.cells))}

	for r := range s.rows {
		for c := range s.cols {
			var nr, nc int
			switch {
			case policy == RotationTranspose:
				nr, nc = c, r
			case dir == Clockwise:
				nr, nc = c, s.rows-1-r
			default:
				nr, nc = s.cols-1-c, r
			}
			out.cells[nr*out.cols+nc] = s.At(r, c)
		}
	}

	return out
}
