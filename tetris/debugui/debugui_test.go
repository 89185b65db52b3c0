package debugui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reith19/Gaming/tetris"
	"github.com/Reith19/Gaming/tetris/debugui"
)

type firstKind struct{}

func (firstKind) IntN(int) int { return 0 }

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(4)
	assert.Zero(t, h.Average())

	h.Push(10 * time.Millisecond)
	h.Push(20 * time.Millisecond)
	assert.InDelta(t, 15, h.Average(), 0.001)

	for range 4 {
		h.Push(5 * time.Millisecond)
	}
	assert.InDelta(t, 5, h.Average(), 0.001)
	assert.Len(t, h.Samples(), 4)
}

func TestSystemRows(t *testing.T) {
	e, err := tetris.New(tetris.DefaultConfig(), tetris.WithRand(firstKind{}))
	require.NoError(t, err)

	rows := debugui.SystemRows(e.Stats())
	require.Len(t, rows, 4)
	assert.Equal(t, "gravitySystem", rows[0][0])
	assert.Equal(t, "1", rows[0][1])
	assert.Equal(t, "spawnSystem", rows[3][0])
}

func TestEngineStateRecordsEvents(t *testing.T) {
	e, err := tetris.New(tetris.DefaultConfig(), tetris.WithRand(firstKind{}))
	require.NoError(t, err)

	es := debugui.NewEngineState(e, 3)
	e.HardDrop()
	e.Pause()

	assert.Equal(t, []string{"piece-locked I", "piece-spawned I", "paused"}, es.Events())

	lines := debugui.StateLines(e.Snapshot())
	assert.Contains(t, lines, [2]string{"State", "falling"})
	assert.Contains(t, lines, [2]string{"Paused", "true"})
	assert.Contains(t, lines, [2]string{"Next", "I"})
}

func TestOverlayToggle(t *testing.T) {
	o := debugui.NewOverlay(false)

	o.Execute()
	assert.False(t, o.Visible())
	assert.Equal(t, debugui.InputState{}, o.Input())

	assert.True(t, o.Toggle())
	assert.True(t, o.Visible())
	assert.False(t, o.Toggle())
}

func TestHiddenOverlaySkipsItems(t *testing.T) {
	rendered := 0
	o := debugui.NewOverlay(false, debugui.Item{Render: func() { rendered++ }})
	o.Add(debugui.Item{Render: func() { rendered++ }})

	o.Execute()
	o.Execute()

	assert.Zero(t, rendered)
	stats := o.Stats()
	require.Equal(t, 1, stats.SystemCount)
	assert.Equal(t, "ImguiSystem", stats.Systems[0].Name)
	assert.Equal(t, int64(2), stats.Systems[0].ExecutionCount)
}
