package tetris_test

import (
	"fmt"
	"testing"

	"github.com/Reith19/Gaming/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("allocates empty grid", func(t *testing.T) {
		b := newBoard(t, 20, 10)
		assert.Equal(t, 20, b.Rows())
		assert.Equal(t, 10, b.Cols())
		assert.Empty(t, occupiedCells(b))
		assert.Len(t, b.Cells(), 20)
		for _, row := range b.Cells() {
			assert.Len(t, row, 10)
		}
	})

	for _, dims := range [][2]int{{0, 10}, {20, 0}, {-1, 5}, {5, -3}} {
		t.Run(fmt.Sprintf("rejects %dx%d", dims[0], dims[1]), func(t *testing.T) {
			b, err := tetris.NewBoard(dims[0], dims[1])
			assert.Nil(t, b)
			assert.ErrorIs(t, err, tetris.ErrInvalidDimensions)
		})
	}
}

func TestBoardBounds(t *testing.T) {
	b := newBoard(t, 4, 3)

	tests := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{2, 3, true},
		{3, 0, false},
		{0, 4, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.in, b.InBounds(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}

	assert.Panics(t, func() { b.Occupied(3, 0) })
	assert.Panics(t, func() { b.Set(0, -1, tetris.T) })
}

func TestBoardSetAndReset(t *testing.T) {
	b := newBoard(t, 4, 3)

	b.Set(1, 2, tetris.S)
	assert.True(t, b.Occupied(1, 2))
	assert.Equal(t, tetris.S, b.At(1, 2).Kind)

	b.Set(1, 2, tetris.None)
	assert.False(t, b.Occupied(1, 2))

	b.Set(0, 0, tetris.L)
	b.Reset()
	assert.Empty(t, occupiedCells(b))
}

func TestBoardClearRow(t *testing.T) {
	b := newBoard(t, 4, 3)
	b.Set(0, 0, tetris.I)
	b.Set(1, 1, tetris.O)
	fillRow(b, 2, tetris.T)
	b.Set(2, 3, tetris.Z)

	b.ClearRow(2)

	require.Equal(t, 4, b.Rows())
	assert.Equal(t, "...\nI..\n.O.\n..Z", b.String())
}

func TestBoardClearTopRow(t *testing.T) {
	b := newBoard(t, 3, 2)
	fillRow(b, 0, tetris.J)
	b.Set(0, 2, tetris.L)

	b.ClearRow(0)

	assert.Equal(t, "..\n..\nL.", b.String())
}

func TestBoardClone(t *testing.T) {
	b := newBoard(t, 2, 2)
	b.Set(0, 0, tetris.T)

	c := b.Clone()
	c.Set(1, 1, tetris.S)

	assert.False(t, b.Occupied(1, 1))
	assert.True(t, c.Occupied(0, 0))
}
