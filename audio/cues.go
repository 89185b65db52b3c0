package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/Reith19/Gaming/tetris"
)

// note is one sine tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var (
	lockNotes     = []note{{220, 60 * time.Millisecond}}
	clearNotes    = []note{{523.25, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {783.99, 80 * time.Millisecond}, {1046.5, 120 * time.Millisecond}}
	levelNotes    = []note{{880, 90 * time.Millisecond}, {1318.5, 140 * time.Millisecond}}
	gameOverNotes = []note{{392, 150 * time.Millisecond}, {329.63, 150 * time.Millisecond}, {261.63, 300 * time.Millisecond}}
	pauseNotes    = []note{{440, 40 * time.Millisecond}}
)

// notes returns the tone sequence played for ev, or nil for silent events.
// A line clear plays one rising note per removed row.
func notes(ev tetris.Event) []note {
	switch ev.Kind {
	case tetris.EventPieceLocked:
		return lockNotes
	case tetris.EventLinesCleared:
		n := min(max(ev.Lines, 1), len(clearNotes))
		return clearNotes[:n]
	case tetris.EventLevelChanged:
		return levelNotes
	case tetris.EventGameOver:
		return gameOverNotes
	case tetris.EventPaused, tetris.EventResumed:
		return pauseNotes
	default:
		return nil
	}
}

// Cue builds the streamer for ev at the given sample rate and volume in
// [0, 1]. It returns nil when ev has no sound.
func Cue(ev tetris.Event, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	ns := notes(ev)
	if len(ns) == 0 {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(ns))
	for _, n := range ns {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(rate.N(n.dur), tone))
	}

	return withVolume(beep.Seq(parts...), volume), nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
