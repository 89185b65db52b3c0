package tetris_test

import (
	"testing"
	"time"

	"github.com/Reith19/Gaming/tetris"
	"github.com/stretchr/testify/assert"
)

func TestSpeedCurve(t *testing.T) {
	curve := tetris.SpeedCurve{
		Interval:    time.Second,
		SpeedFactor: 0.5,
		MinInterval: 200 * time.Millisecond,
	}

	assert.Equal(t, time.Second, curve.At(1))
	assert.Equal(t, time.Second, curve.At(0))
	assert.Equal(t, 500*time.Millisecond, curve.At(2))
	assert.Equal(t, 250*time.Millisecond, curve.At(3))
	assert.Equal(t, 200*time.Millisecond, curve.At(4))
	assert.Equal(t, 200*time.Millisecond, curve.At(30))
}

func TestGravityAdvance(t *testing.T) {
	t.Run("fires when the interval is reached", func(t *testing.T) {
		g := tetris.NewGravity(tetris.SpeedCurve{Interval: 100 * time.Millisecond, SpeedFactor: 1, MinInterval: time.Millisecond})

		assert.False(t, g.Advance(60*time.Millisecond))
		assert.Equal(t, 60*time.Millisecond, g.Elapsed())
		assert.True(t, g.Advance(40*time.Millisecond))
		assert.Zero(t, g.Elapsed())
	})

	t.Run("due at exactly the interval", func(t *testing.T) {
		g := tetris.NewGravity(tetris.SpeedCurve{Interval: 1500 * time.Millisecond, SpeedFactor: 1, MinInterval: time.Millisecond})

		assert.False(t, g.Advance(1500*time.Millisecond-time.Nanosecond))
		assert.True(t, g.Advance(time.Nanosecond))

		g.Reset()
		assert.True(t, g.Advance(1500*time.Millisecond))
	})

	t.Run("one step however much time piled up", func(t *testing.T) {
		g := tetris.NewGravity(tetris.SpeedCurve{Interval: 100 * time.Millisecond, SpeedFactor: 1, MinInterval: time.Millisecond})

		assert.True(t, g.Advance(time.Second))
		assert.False(t, g.Advance(0))
	})

	t.Run("negative deltas are ignored", func(t *testing.T) {
		g := tetris.NewGravity(tetris.SpeedCurve{Interval: 100 * time.Millisecond, SpeedFactor: 1, MinInterval: time.Millisecond})

		g.Advance(50 * time.Millisecond)
		assert.False(t, g.Advance(-time.Second))
		assert.Equal(t, 50*time.Millisecond, g.Elapsed())
	})

	t.Run("level changes the interval", func(t *testing.T) {
		g := tetris.NewGravity(tetris.SpeedCurve{Interval: 100 * time.Millisecond, SpeedFactor: 0.5, MinInterval: time.Millisecond})

		g.SetLevel(2)
		assert.Equal(t, 50*time.Millisecond, g.Interval())
		assert.True(t, g.Advance(50*time.Millisecond))
	})
}
