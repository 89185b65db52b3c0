// Package controls maps frontend key presses onto engine commands and
// rate-limits them.
package controls

import (
	"time"

	"github.com/Reith19/Gaming/tetris"
)

// Command is a player intent, independent of the device that produced it.
type Command uint8

const (
	None Command = iota
	MoveLeft
	MoveRight
	SoftDrop
	RotateClockwise
	RotateCounterClockwise
	HardDrop
	TogglePause
	Restart
	ToggleOverlay
	Quit
)

var commandNames = [...]string{
	"none", "move-left", "move-right", "soft-drop", "rotate-cw", "rotate-ccw",
	"hard-drop", "toggle-pause", "restart", "toggle-overlay", "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Repeats reports whether holding the key keeps issuing the command. The rest
// fire once per press.
func (c Command) Repeats() bool {
	switch c {
	case MoveLeft, MoveRight, SoftDrop, RotateClockwise, RotateCounterClockwise:
		return true
	default:
		return false
	}
}

// Apply runs c against e and reports whether the engine accepted it.
// Frontend-only commands (overlay, quit) are never accepted.
func Apply(e *tetris.Engine, c Command) bool {
	switch c {
	case MoveLeft:
		return e.MoveLeft()
	case MoveRight:
		return e.MoveRight()
	case SoftDrop:
		return e.SoftDrop()
	case RotateClockwise:
		return e.RotateClockwise()
	case RotateCounterClockwise:
		return e.RotateCounterClockwise()
	case HardDrop:
		return e.HardDrop()
	case TogglePause:
		if e.Paused() {
			return e.Resume()
		}
		return e.Pause()
	case Restart:
		return e.Restart()
	default:
		return false
	}
}

// Limiter enforces a minimum time between two issues of the same command.
type Limiter struct {
	cooldown time.Duration
	last     map[Command]time.Time
}

func NewLimiter(cooldown time.Duration) *Limiter {
	return &Limiter{cooldown: cooldown, last: make(map[Command]time.Time)}
}

// Allow reports whether c may fire at now and, if so, starts its cooldown.
func (l *Limiter) Allow(c Command, now time.Time) bool {
	if last, ok := l.last[c]; ok && now.Sub(last) < l.cooldown {
		return false
	}
	l.last[c] = now
	return true
}

func (l *Limiter) SetCooldown(d time.Duration) {
	l.cooldown = d
}

// Reset forgets every cooldown.
func (l *Limiter) Reset() {
	clear(l.last)
}
