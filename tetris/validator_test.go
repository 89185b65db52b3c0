package tetris_test

import (
	"math/rand/v2"
	"testing"

	"github.com/Reith19/Gaming/tetris"
	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	b := newBoard(t, 20, 10)
	b.Set(5, 10, tetris.Z)

	horizontalI := tetris.BaseShape(tetris.I)
	square := tetris.BaseShape(tetris.O)

	tests := []struct {
		name   string
		shape  tetris.Shape
		anchor tetris.Point
		valid  bool
	}{
		{"spawn position", horizontalI, tetris.Point{X: 3, Y: 0}, true},
		{"flush left", horizontalI, tetris.Point{X: 0, Y: 5}, true},
		{"flush right", horizontalI, tetris.Point{X: 6, Y: 5}, true},
		{"past left wall", horizontalI, tetris.Point{X: -1, Y: 5}, false},
		{"past right wall", horizontalI, tetris.Point{X: 7, Y: 5}, false},
		{"resting on floor", square, tetris.Point{X: 0, Y: 18}, true},
		{"through floor", square, tetris.Point{X: 0, Y: 19}, false},
		{"overlapping locked cell", square, tetris.Point{X: 4, Y: 9}, false},
		{"beside locked cell", square, tetris.Point{X: 6, Y: 9}, true},
		{"partly above top", square, tetris.Point{X: 0, Y: -1}, true},
		{"entirely above top", square, tetris.Point{X: 0, Y: -5}, true},
		{"above top but past wall", square, tetris.Point{X: 9, Y: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tetris.IsValid(b, tt.shape, tt.anchor))
		})
	}
}

func TestValidatorRejectsAboveTopWhenDisallowed(t *testing.T) {
	b := newBoard(t, 20, 10)
	v := tetris.Validator{AllowAboveTop: false}

	assert.False(t, v.Valid(b, tetris.BaseShape(tetris.O), tetris.Point{X: 0, Y: -1}))
	assert.True(t, v.Valid(b, tetris.BaseShape(tetris.O), tetris.Point{X: 0, Y: 0}))
}

func TestIsValidDoesNotMutate(t *testing.T) {
	b := newBoard(t, 6, 4)
	fillRow(b, 5, tetris.L, 1)
	before := b.String()

	for x := -2; x < 6; x++ {
		for y := -2; y < 8; y++ {
			tetris.IsValid(b, tetris.BaseShape(tetris.T), tetris.Point{X: x, Y: y})
		}
	}

	assert.Equal(t, before, b.String())
}

// Every occupied shape cell must land in a free in-range column above the floor.
func TestIsValidMatchesCellwiseDefinition(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	b := newBoard(t, 8, 6)
	for range 15 {
		b.Set(rng.IntN(6), rng.IntN(8), tetris.T)
	}

	for _, k := range tetris.Kinds {
		shape := tetris.BaseShape(k)
		for range 4 {
			shape = tetris.Rotate(shape, tetris.Clockwise)
			for x := -3; x < 8; x++ {
				for y := -3; y < 10; y++ {
					want := true
					for off := range shape.Cells() {
						cx, cy := x+off.X, y+off.Y
						switch {
						case cx < 0 || cx >= b.Cols() || cy >= b.Rows():
							want = false
						case cy >= 0 && b.Occupied(cx, cy):
							want = false
						}
					}
					assert.Equal(t, want, tetris.IsValid(b, shape, tetris.Point{X: x, Y: y}),
						"kind %s at (%d,%d)\n%s", k, x, y, shape)
				}
			}
		}
	}
}

func TestDropDistance(t *testing.T) {
	b := newBoard(t, 20, 10)
	v := tetris.Validator{AllowAboveTop: true}
	piece := tetris.Piece{Kind: tetris.I, Shape: tetris.BaseShape(tetris.I), Anchor: tetris.Point{X: 3, Y: 0}}

	assert.Equal(t, 19, v.DropDistance(b, piece))

	b.Set(4, 12, tetris.O)
	assert.Equal(t, 11, v.DropDistance(b, piece))
}
