package tetris

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Reith19/Gaming/ecs"
)

// round is the state of the game in progress, shared by every system as a
// singleton.
type round struct {
	session     uuid.UUID
	state       State
	paused      bool
	active      Piece
	hasActive   bool
	lockPending bool
	lockedOut   bool
	score       int
	lines       int
	level       int
	ticks       uint64
	changed     bool // set by systems during a frame
}

// rules holds the collaborators the systems consult. It is fixed for the
// lifetime of an engine apart from the session-scoped logger.
type rules struct {
	cfg       Config
	catalog   *Catalog
	validator Validator
	gravity   *Gravity
	scorer    Scorer
	events    *eventBus
	log       *log.Logger
}

// emit queues ev on the frame so subscribers only hear about it once every
// system has run.
func (rl *rules) emit(frame *ecs.UpdateFrame, ev Event) {
	frame.Commands.Defer(func() {
		rl.events.emit(ev)
	})
}

func (rl *rules) endGame(frame *ecs.UpdateFrame, r *round, reason string) {
	r.state = GameOver
	r.hasActive = false
	r.lockPending = false

	rl.log.Info("game over", "reason", reason, "score", r.score, "lines", r.lines, "level", r.level)
	rl.emit(frame, Event{Kind: EventGameOver, Score: r.score, Level: r.level})
}

// gravitySystem advances the fall timer and moves the active piece down one row
// when a step is due. A blocked step marks the piece for locking.
type gravitySystem struct {
	Round ecs.Singleton[round]
	Board ecs.Singleton[Board]
	Rules ecs.Singleton[rules]
}

func (s *gravitySystem) Execute(frame *ecs.UpdateFrame) {
	r := s.Round.Get()
	if r.state != Falling || !r.hasActive || r.lockPending || frame.DeltaTime <= 0 {
		return
	}

	rl := s.Rules.Get()
	if !rl.gravity.Advance(frame.DeltaTime) {
		return
	}

	next := r.active.Translated(0, 1)
	if rl.validator.Fits(s.Board.Get(), next) {
		r.active = next
		r.changed = true
		return
	}

	r.lockPending = true
}

// lockSystem commits a piece that can no longer fall into the board.
type lockSystem struct {
	Round ecs.Singleton[round]
	Board ecs.Singleton[Board]
	Rules ecs.Singleton[rules]
}

func (s *lockSystem) Execute(frame *ecs.UpdateFrame) {
	r := s.Round.Get()
	if !r.lockPending {
		return
	}

	piece := r.active
	hidden := Lock(s.Board.Get(), piece)

	r.lockPending = false
	r.hasActive = false
	r.lockedOut = hidden > 0
	r.state = LineClearing
	r.changed = true

	rl := s.Rules.Get()
	rl.log.Debug("piece locked", "kind", piece.Kind, "x", piece.Anchor.X, "y", piece.Anchor.Y, "hidden", hidden)
	rl.emit(frame, Event{Kind: EventPieceLocked, Piece: piece.Kind})
}

// clearSystem removes full rows after a lock and scores them.
type clearSystem struct {
	Round ecs.Singleton[round]
	Board ecs.Singleton[Board]
	Rules ecs.Singleton[rules]
}

func (s *clearSystem) Execute(frame *ecs.UpdateFrame) {
	r := s.Round.Get()
	if r.state != LineClearing {
		return
	}

	rl := s.Rules.Get()
	if n := ClearLines(s.Board.Get()); n > 0 {
		r.lines += n
		r.score += rl.scorer.Points(n)

		rl.log.Debug("lines cleared", "lines", n, "score", r.score)
		rl.emit(frame, Event{Kind: EventLinesCleared, Lines: n})
		rl.emit(frame, Event{Kind: EventScoreChanged, Score: r.score})

		if level := rl.scorer.Level(r.lines); level != r.level {
			r.level = level
			rl.gravity.SetLevel(level)
			rl.emit(frame, Event{Kind: EventLevelChanged, Level: level})
		}
	}

	if r.lockedOut {
		rl.endGame(frame, r, "locked above the top row")
		return
	}
	r.state = Spawning
}

// spawnSystem brings in the next piece, ending the game when it does not fit.
type spawnSystem struct {
	Round ecs.Singleton[round]
	Board ecs.Singleton[Board]
	Rules ecs.Singleton[rules]
}

func (s *spawnSystem) Execute(frame *ecs.UpdateFrame) {
	r := s.Round.Get()
	if r.state != Spawning {
		return
	}
	r.changed = true

	rl := s.Rules.Get()
	piece := rl.catalog.Spawn()
	if !rl.validator.Fits(s.Board.Get(), piece) {
		rl.endGame(frame, r, "spawn blocked")
		return
	}

	r.active = piece
	r.hasActive = true
	r.state = Falling
	rl.gravity.Reset()

	rl.log.Debug("piece spawned", "kind", piece.Kind, "next", rl.catalog.Next())
	rl.emit(frame, Event{Kind: EventPieceSpawned, Piece: piece.Kind})
}
