package tetris

import "time"

// Snapshot is a read-only copy of everything a renderer needs. Mutating it
// never affects the engine.
type Snapshot struct {
	Session string
	Rows    int
	Cols    int
	Cells   [][]Cell

	// Active is nil when no piece is under control (game over).
	Active *Piece
	// GhostY is the anchor row the active piece would land on if hard-dropped.
	GhostY int
	Next   Kind

	Score    int
	Lines    int
	Level    int
	State    State
	Paused   bool
	Interval time.Duration
	Ticks    uint64
}

// Snapshot captures the current game state.
func (e *Engine) Snapshot() Snapshot {
	r, rl := e.round, e.rules
	s := Snapshot{
		Session:  r.session.String(),
		Rows:     e.board.Rows(),
		Cols:     e.board.Cols(),
		Cells:    e.board.Cells(),
		Next:     rl.catalog.Next(),
		Score:    r.score,
		Lines:    r.lines,
		Level:    r.level,
		State:    r.state,
		Paused:   r.paused,
		Interval: rl.gravity.Interval(),
		Ticks:    r.ticks,
	}

	if r.hasActive {
		active := r.active
		s.Active = &active
		s.GhostY = active.Anchor.Y + rl.validator.DropDistance(e.board, active)
	}

	return s
}

// Overlay returns the cells with the active piece drawn in, for renderers that
// only want one grid. Active cells above the top row are left out.
func (s Snapshot) Overlay() [][]Cell {
	out := make([][]Cell, len(s.Cells))
	for r, row := range s.Cells {
		out[r] = make([]Cell, len(row))
		copy(out[r], row)
	}

	if s.Active == nil {
		return out
	}
	for p := range s.Active.Cells() {
		if p.Y >= 0 && p.Y < s.Rows && p.X >= 0 && p.X < s.Cols {
			out[p.Y][p.X] = Cell{Kind: s.Active.Kind}
		}
	}
	return out
}

// Ghost returns the board cells the active piece would occupy after a hard
// drop, or nil when there is no active piece.
func (s Snapshot) Ghost() []Point {
	if s.Active == nil {
		return nil
	}

	landed := *s.Active
	landed.Anchor.Y = s.GhostY

	var cells []Point
	for p := range landed.Cells() {
		if p.Y >= 0 {
			cells = append(cells, p)
		}
	}
	return cells
}
