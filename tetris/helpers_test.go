package tetris_test

import (
	"testing"
	"time"

	"github.com/Reith19/Gaming/tetris"
	"github.com/stretchr/testify/require"
)

// Catalog indices of each kind, as drawn by the uniform randomizer.
const (
	idxI = iota
	idxO
	idxT
	idxS
	idxZ
	idxL
	idxJ
)

// scriptedRand replays values in a loop.
type scriptedRand struct {
	values []int
	pos    int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.values[r.pos%len(r.values)]
	r.pos++
	return v % n
}

func always(idx int) *scriptedRand {
	return &scriptedRand{values: []int{idx}}
}

func testConfig() tetris.Config {
	cfg := tetris.DefaultConfig()
	cfg.Interval = 100 * time.Millisecond
	cfg.MinInterval = 10 * time.Millisecond
	return cfg
}

func newBoard(t *testing.T, rows, cols int) *tetris.Board {
	t.Helper()
	b, err := tetris.NewBoard(rows, cols)
	require.NoError(t, err)
	return b
}

// fillRow occupies every cell of row except the listed columns.
func fillRow(b *tetris.Board, row int, k tetris.Kind, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for x := range b.Cols() {
		if !skip[x] {
			b.Set(x, row, k)
		}
	}
}

// recorder collects delivered events.
type recorder struct {
	events []tetris.Event
}

func (r *recorder) handle(e tetris.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []tetris.EventKind {
	out := make([]tetris.EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recorder) count(k tetris.EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func occupiedCells(b *tetris.Board) []tetris.Point {
	var out []tetris.Point
	for y := range b.Rows() {
		for x := range b.Cols() {
			if b.Occupied(x, y) {
				out = append(out, tetris.Point{X: x, Y: y})
			}
		}
	}
	return out
}
