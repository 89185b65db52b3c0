package tetris

import (
	"fmt"
	"strings"
)

// Cell is one board square. The zero value is empty.
type Cell struct {
	Kind Kind
}

// Occupied reports whether a locked block sits in the cell.
func (c Cell) Occupied() bool {
	return c.Kind != None
}

// Board is the fixed-size grid of locked cells. Row 0 is the top of the well.
// Only Lock, ClearLines and Reset mutate cell occupancy during play.
type Board struct {
	rows, cols int
	grid       [][]Cell
}

// NewBoard allocates an empty rows×cols board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	b := &Board{rows: rows, cols: cols, grid: make([][]Cell, rows)}
	for r := range b.grid {
		b.grid[r] = make([]Cell, cols)
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

// InBounds reports whether 0 ≤ x < cols and 0 ≤ y < rows.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// Occupied reports whether the in-range cell (x, y) holds a locked block.
// It panics when (x, y) is outside the board; callers check InBounds first.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y).Occupied()
}

// At returns the cell at (x, y). It panics when (x, y) is outside the board.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d board", x, y, b.rows, b.cols))
	}
	return b.grid[y][x]
}

// Set stores a block of the given kind at (x, y). Setting None empties the cell.
func (b *Board) Set(x, y int, k Kind) {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d board", x, y, b.rows, b.cols))
	}
	b.grid[y][x] = Cell{Kind: k}
}

// RowFull reports whether every cell in row is occupied.
func (b *Board) RowFull(row int) bool {
	for _, cell := range b.grid[row] {
		if !cell.Occupied() {
			return false
		}
	}
	return true
}

// ClearRow removes row and inserts an empty row at the top. Rows above the
// removed one shift down by one; rows below it are untouched.
func (b *Board) ClearRow(row int) {
	if row < 0 || row >= b.rows {
		panic(fmt.Sprintf("tetris: row %d outside %d-row board", row, b.rows))
	}

	removed := b.grid[row]
	copy(b.grid[1:row+1], b.grid[:row])
	clear(removed)
	b.grid[0] = removed
}

// Reset empties every cell.
func (b *Board) Reset() {
	for _, row := range b.grid {
		clear(row)
	}
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	c := &Board{rows: b.rows, cols: b.cols, grid: make([][]Cell, b.rows)}
	for r, row := range b.grid {
		c.grid[r] = make([]Cell, b.cols)
		copy(c.grid[r], row)
	}
	return c
}

// Cells returns a row-major copy of the grid.
func (b *Board) Cells() [][]Cell {
	return b.Clone().grid
}

func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell.Occupied() {
				sb.WriteString(cell.Kind.String())
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
