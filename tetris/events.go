package tetris

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// EventKind tags an engine notification.
type EventKind uint8

const (
	EventPieceSpawned EventKind = iota
	EventPieceLocked
	EventLinesCleared
	EventScoreChanged
	EventLevelChanged
	EventGameOver
	EventPaused
	EventResumed
	EventRestarted
)

var eventNames = [...]string{
	"piece-spawned", "piece-locked", "lines-cleared", "score-changed",
	"level-changed", "game-over", "paused", "resumed", "restarted",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a notification emitted after a command or tick completes. Only the
// fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	Piece Kind // spawned or locked piece
	Lines int  // rows removed by one lock
	Score int  // score after the change
	Level int  // level after the change
}

// Handler receives engine events. Handlers may read the engine and issue
// commands; events caused by those commands are delivered after the current
// batch.
type Handler func(Event)

// SubscriptionID identifies a registered handler.
type SubscriptionID uint64

type subscription struct {
	handler Handler
	mask    uint32
}

func (s subscription) wants(k EventKind) bool {
	return s.mask == 0 || s.mask&(1<<k) != 0
}

// eventBus buffers events raised while the engine is mid-update and delivers
// them once the update has finished, in emission order, to subscribers in
// subscription order.
type eventBus struct {
	subs     *intmap.Map[SubscriptionID, subscription]
	nextID   SubscriptionID
	pending  []Event
	flushing bool
	order    []SubscriptionID
}

func newEventBus() *eventBus {
	return &eventBus{subs: intmap.New[SubscriptionID, subscription](8)}
}

func (b *eventBus) subscribe(h Handler, kinds ...EventKind) SubscriptionID {
	var mask uint32
	for _, k := range kinds {
		mask |= 1 << k
	}

	b.nextID++
	b.subs.Put(b.nextID, subscription{handler: h, mask: mask})
	return b.nextID
}

func (b *eventBus) unsubscribe(id SubscriptionID) bool {
	if _, ok := b.subs.Get(id); !ok {
		return false
	}
	b.subs.Del(id)
	return true
}

func (b *eventBus) emit(e Event) {
	b.pending = append(b.pending, e)
}

// flush delivers pending events. A flush triggered from inside a handler
// returns immediately; the outer flush picks up whatever the handler queued.
func (b *eventBus) flush() {
	if b.flushing {
		return
	}
	b.flushing = true
	defer func() { b.flushing = false }()

	for len(b.pending) > 0 {
		batch := b.pending
		b.pending = nil

		b.order = b.order[:0]
		b.subs.ForEach(func(id SubscriptionID, _ subscription) bool {
			b.order = append(b.order, id)
			return true
		})
		slices.Sort(b.order)
		ids := slices.Clone(b.order)

		for _, e := range batch {
			for _, id := range ids {
				sub, ok := b.subs.Get(id)
				if !ok || !sub.wants(e.Kind) {
					continue
				}
				sub.handler(e)
			}
		}
	}
}

// discard drops undelivered events.
func (b *eventBus) discard() {
	b.pending = b.pending[:0]
}
