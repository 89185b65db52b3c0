package tetris

import (
	"math"
	"time"
)

// SpeedCurve maps a 1-based level to the gravity interval.
type SpeedCurve struct {
	Interval    time.Duration
	SpeedFactor float64
	MinInterval time.Duration
}

// At returns Interval × SpeedFactor^(level-1), never below MinInterval.
func (c SpeedCurve) At(level int) time.Duration {
	if level < 1 {
		level = 1
	}

	d := time.Duration(float64(c.Interval) * math.Pow(c.SpeedFactor, float64(level-1)))
	if d < c.MinInterval {
		d = c.MinInterval
	}
	return d
}

// Gravity accumulates elapsed time and reports when the active piece is due to
// fall one row.
type Gravity struct {
	curve       SpeedCurve
	interval    time.Duration
	accumulator time.Duration
}

// NewGravity returns a scheduler running at the curve's level-1 interval.
func NewGravity(curve SpeedCurve) *Gravity {
	return &Gravity{curve: curve, interval: curve.At(1)}
}

// Advance adds dt to the accumulator. Once the accumulator reaches the current
// interval it is reset and Advance reports a single due step, however much
// time has piled up.
//
// A step is due once the accumulator equals the interval, not only after it
// exceeds it.
func (g *Gravity) Advance(dt time.Duration) bool {
	if dt > 0 {
		g.accumulator += dt
	}
	if g.accumulator < g.interval {
		return false
	}
	g.accumulator = 0
	return true
}

// SetLevel switches to the interval for level. The accumulator is kept.
func (g *Gravity) SetLevel(level int) {
	g.interval = g.curve.At(level)
}

// Interval returns the current fall interval.
func (g *Gravity) Interval() time.Duration {
	return g.interval
}

// Elapsed returns the time accumulated toward the next step.
func (g *Gravity) Elapsed() time.Duration {
	return g.accumulator
}

// Reset clears the accumulator. Called whenever a new piece spawns so that it
// gets a full interval before its first fall.
func (g *Gravity) Reset() {
	g.accumulator = 0
}
