package tetris

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Reith19/Gaming/ecs"
)

// Engine owns all state of one game: the board, the active piece, the state
// machine and the score. It performs no I/O and keeps no timers; a driver
// feeds it elapsed time through Tick and player input through the command
// methods. An Engine is not safe for concurrent use; one goroutine drives it.
//
// Each update runs the gravity, lock, clear and spawn systems in that order on
// an ecs.Scheduler. The board, the round and the rules live in the
// scheduler's storage as singletons.
type Engine struct {
	initial   *Board
	scheduler *ecs.Scheduler
	board     *Board
	round     *round
	rules     *rules
	baseLog   *log.Logger
}

// Option customizes a new Engine.
type Option func(*Engine)

// WithRand sets the random source pieces are drawn from. Use a seeded source
// for reproducible piece sequences.
func WithRand(rng Rand) Option {
	return func(e *Engine) {
		e.rules.catalog.rng = rng
	}
}

// WithLogger sets the logger. The engine logs nothing by default.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.baseLog = logger
	}
}

// WithBoard starts the first game from a copy of board instead of an empty
// well. Restart always returns to an empty well.
func WithBoard(board *Board) Option {
	return func(e *Engine) {
		e.initial = board.Clone()
	}
}

// New validates cfg and returns an engine with its first piece already spawned.
// If that piece does not fit, New still succeeds and the engine starts in
// GameOver; the game-over event is not delivered because nothing can have
// subscribed yet. Callers starting from a custom board should check State.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board, err := NewBoard(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}

	seed := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	catalog, err := NewCatalog(seed, cfg.Randomizer, cfg.Cols, cfg.SpawnRow)
	if err != nil {
		return nil, err
	}

	storage := ecs.NewStorage()
	e := &Engine{
		scheduler: ecs.NewScheduler(storage),
		board:     ecs.NewSingleton(storage, *board).Get(),
		round:     ecs.NewSingleton(storage, round{level: 1}).Get(),
		rules: ecs.NewSingleton(storage, rules{
			cfg:       cfg,
			catalog:   catalog,
			validator: cfg.validator(),
			gravity:   NewGravity(cfg.speedCurve()),
			scorer:    cfg.scorer(),
			events:    newEventBus(),
		}).Get(),
		baseLog: log.New(io.Discard),
	}

	e.scheduler.Register(&gravitySystem{})
	e.scheduler.Register(&lockSystem{})
	e.scheduler.Register(&clearSystem{})
	e.scheduler.Register(&spawnSystem{})

	for _, opt := range opts {
		opt(e)
	}

	if e.rules.catalog.rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if e.initial != nil {
		if e.initial.Rows() != cfg.Rows || e.initial.Cols() != cfg.Cols {
			return nil, fmt.Errorf("%w: starting board is %dx%d, config is %dx%d",
				ErrInvalidDimensions, e.initial.Rows(), e.initial.Cols(), cfg.Rows, cfg.Cols)
		}
		*e.board = *e.initial.Clone()
	}

	e.rules.catalog.Reset()
	e.begin()
	e.rules.events.discard()
	return e, nil
}

// begin starts a fresh game on the current board.
func (e *Engine) begin() {
	session := uuid.New()
	e.rules.log = e.baseLog.With("session", session.String())
	*e.round = round{session: session, state: Spawning, level: 1}

	e.rules.gravity.SetLevel(1)
	e.rules.gravity.Reset()

	e.rules.log.Info("game started", "rows", e.board.Rows(), "cols", e.board.Cols())
	e.run(0)
}

// run pushes one frame through the systems. Events they raise reach the bus
// when the frame's commands flush.
func (e *Engine) run(dt time.Duration) bool {
	e.round.changed = false
	e.scheduler.Once(dt)
	return e.round.changed
}

// controllable reports whether player moves may touch the active piece.
func (e *Engine) controllable() bool {
	r := e.round
	return !r.paused && r.state == Falling && r.hasActive
}

// Tick advances gravity by dt. At most one gravity step, with any lock, line
// clear and spawn it causes, happens per call. Tick does nothing while paused
// or after the game is over. It reports whether the game state changed.
func (e *Engine) Tick(dt time.Duration) bool {
	if e.round.paused || e.round.state == GameOver {
		return false
	}

	e.round.ticks++
	changed := e.run(dt)
	e.rules.events.flush()
	return changed
}

// MoveLeft shifts the active piece one column left if the new position is valid.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1, 0)
}

// MoveRight shifts the active piece one column right if the new position is valid.
func (e *Engine) MoveRight() bool {
	return e.shift(1, 0)
}

// SoftDrop moves the active piece down one row if possible. It never locks.
func (e *Engine) SoftDrop() bool {
	return e.shift(0, 1)
}

func (e *Engine) shift(dx, dy int) bool {
	if !e.controllable() {
		return false
	}

	next := e.round.active.Translated(dx, dy)
	if !e.rules.validator.Fits(e.board, next) {
		return false
	}
	e.round.active = next
	return true
}

// HardDrop drops the active piece as far as it can go and locks it at once,
// without waiting for the next tick.
func (e *Engine) HardDrop() bool {
	if !e.controllable() {
		return false
	}

	r := e.round
	distance := e.rules.validator.DropDistance(e.board, r.active)
	r.active = r.active.Translated(0, distance)
	r.lockPending = true

	e.run(0)
	e.rules.events.flush()
	return true
}

// RotateClockwise turns the active piece a quarter clockwise if the result fits.
func (e *Engine) RotateClockwise() bool {
	return e.rotate(Clockwise)
}

// RotateCounterClockwise turns the active piece a quarter counter-clockwise if
// the result fits.
func (e *Engine) RotateCounterClockwise() bool {
	return e.rotate(CounterClockwise)
}

func (e *Engine) rotate(dir Direction) bool {
	if !e.controllable() {
		return false
	}

	next := e.round.active.Rotated(e.rules.cfg.Rotation, dir)
	if !e.rules.validator.Fits(e.board, next) {
		return false
	}
	e.round.active = next
	return true
}

// Pause freezes gravity and player commands. It has no effect after game over.
func (e *Engine) Pause() bool {
	if e.round.paused || e.round.state == GameOver {
		return false
	}

	e.round.paused = true
	e.rules.log.Debug("paused")
	e.rules.events.emit(Event{Kind: EventPaused})
	e.rules.events.flush()
	return true
}

// Resume undoes Pause.
func (e *Engine) Resume() bool {
	if !e.round.paused {
		return false
	}

	e.round.paused = false
	e.rules.log.Debug("resumed")
	e.rules.events.emit(Event{Kind: EventResumed})
	e.rules.events.flush()
	return true
}

// Restart discards the board, score and piece queue and starts a new game
// with a new session ID. Score and level listeners are told about the reset
// when the values actually change.
func (e *Engine) Restart() bool {
	score, level := e.round.score, e.round.level
	e.board.Reset()
	e.rules.catalog.Reset()

	bus := e.rules.events
	bus.emit(Event{Kind: EventRestarted})
	if score != 0 {
		bus.emit(Event{Kind: EventScoreChanged, Score: 0})
	}
	if level != 1 {
		bus.emit(Event{Kind: EventLevelChanged, Level: 1})
	}

	e.begin()
	bus.flush()
	return true
}

// Subscribe registers h for the given event kinds, or for every kind when none
// are given.
func (e *Engine) Subscribe(h Handler, kinds ...EventKind) SubscriptionID {
	return e.rules.events.subscribe(h, kinds...)
}

// Unsubscribe removes a handler. It reports whether the subscription existed.
func (e *Engine) Unsubscribe(id SubscriptionID) bool {
	return e.rules.events.unsubscribe(id)
}

// State returns the state machine's position.
func (e *Engine) State() State { return e.round.state }

// Paused reports whether the engine is paused.
func (e *Engine) Paused() bool { return e.round.paused }

// Score returns the current score.
func (e *Engine) Score() int { return e.round.score }

// Session returns the ID of the current game.
func (e *Engine) Session() uuid.UUID { return e.round.session }

// Config returns the rules the engine was built with.
func (e *Engine) Config() Config { return e.rules.cfg }

// Stats returns per-system timing of the update scheduler.
func (e *Engine) Stats() ecs.SchedulerStats {
	return e.scheduler.GetStats()
}
