// Package audio plays short tones for engine events through the beep speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Reith19/Gaming/tetris"
)

// Output receives finished cues. The speaker package satisfies it through
// SpeakerOutput.
type Output interface {
	Play(s ...beep.Streamer)
}

// SpeakerOutput plays through the process-wide beep speaker.
type SpeakerOutput struct{}

func (SpeakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

// Player turns engine events into cues.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	out    Output
	log    *log.Logger
	muted  bool
	opened bool
}

// NewPlayer returns a player that sends cues to out.
func NewPlayer(rate beep.SampleRate, volume float64, out Output, logger *log.Logger) *Player {
	return &Player{rate: rate, volume: volume, out: out, log: logger}
}

// Open initializes the speaker and returns a player wired to it.
func Open(sampleRate int, volume float64, logger *log.Logger) (*Player, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}

	p := NewPlayer(rate, volume, SpeakerOutput{}, logger)
	p.opened = true
	return p, nil
}

// Attach subscribes the player to every event kind that has a cue.
func (p *Player) Attach(e *tetris.Engine) tetris.SubscriptionID {
	return e.Subscribe(p.Handle,
		tetris.EventPieceLocked,
		tetris.EventLinesCleared,
		tetris.EventLevelChanged,
		tetris.EventGameOver,
		tetris.EventPaused,
		tetris.EventResumed,
	)
}

// Handle plays the cue for ev, if any.
func (p *Player) Handle(ev tetris.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}

	s, err := Cue(ev, p.rate, p.volume)
	if err != nil {
		p.log.Warn("audio cue failed", "event", ev.Kind, "err", err)
		return
	}
	if s != nil {
		p.out.Play(s)
	}
}

// SetMuted silences or restores cues.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Close releases the speaker if Open created it.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.opened {
		speaker.Close()
		p.opened = false
	}
}
