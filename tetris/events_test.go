package tetris

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Reith19/Gaming/ecs"
)

func TestEventBus(t *testing.T) {
	b := newEventBus()

	var got []string
	first := b.subscribe(func(e Event) { got = append(got, "a:"+e.Kind.String()) })
	b.subscribe(func(e Event) { got = append(got, "b:"+e.Kind.String()) }, EventGameOver)

	b.emit(Event{Kind: EventPaused})
	b.emit(Event{Kind: EventGameOver})
	if len(got) != 0 {
		t.Fatalf("expected no delivery before flush, got %v", got)
	}

	b.flush()
	want := []string{"a:paused", "a:game-over", "b:game-over"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if !b.unsubscribe(first) {
		t.Errorf("expected unsubscribe to succeed")
	}
	if b.unsubscribe(first) {
		t.Errorf("expected second unsubscribe to fail")
	}

	got = got[:0]
	b.emit(Event{Kind: EventPaused})
	b.discard()
	b.flush()
	if len(got) != 0 {
		t.Errorf("expected discarded events to be dropped, got %v", got)
	}
}

func TestEventBusNestedEmit(t *testing.T) {
	b := newEventBus()

	var got []EventKind
	b.subscribe(func(e Event) {
		got = append(got, e.Kind)
		if e.Kind == EventPieceLocked {
			b.emit(Event{Kind: EventGameOver})
			b.flush()
		}
	})
	var late []EventKind
	b.subscribe(func(e Event) { late = append(late, e.Kind) })

	b.emit(Event{Kind: EventPieceLocked})
	b.emit(Event{Kind: EventPieceSpawned})
	b.flush()

	want := []EventKind{EventPieceLocked, EventPieceSpawned, EventGameOver}
	for _, seen := range [][]EventKind{got, late} {
		if len(seen) != len(want) {
			t.Fatalf("expected %v, got %v", want, seen)
		}
		for i := range want {
			if seen[i] != want[i] {
				t.Errorf("delivery %d: expected %s, got %s", i, want[i], seen[i])
			}
		}
	}
}

type pendingWatch struct {
	Rules ecs.Singleton[rules]
	seen  int
}

func (w *pendingWatch) Execute(frame *ecs.UpdateFrame) {
	w.seen = len(w.Rules.Get().events.pending)
}

func TestSystemEventsWaitForFrameEnd(t *testing.T) {
	board, err := NewBoard(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	storage := ecs.NewStorage()
	ecs.NewSingleton(storage, *board)
	r := ecs.NewSingleton(storage, round{
		state:       Falling,
		hasActive:   true,
		lockPending: true,
		active:      Piece{Kind: O, Shape: BaseShape(O), Anchor: Point{X: 0, Y: 2}},
		level:       1,
	}).Get()
	rl := ecs.NewSingleton(storage, rules{events: newEventBus(), log: log.New(io.Discard)}).Get()

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&lockSystem{})
	watch := &pendingWatch{}
	scheduler.Register(watch)

	scheduler.Once(0)

	if watch.seen != 0 {
		t.Errorf("expected no events on the bus while systems run, got %d", watch.seen)
	}
	if len(rl.events.pending) != 1 || rl.events.pending[0].Kind != EventPieceLocked {
		t.Errorf("expected piece-locked queued after the frame, got %v", rl.events.pending)
	}
	if r.state != LineClearing || r.hasActive {
		t.Errorf("expected the piece locked, got state %s active %v", r.state, r.hasActive)
	}
}
