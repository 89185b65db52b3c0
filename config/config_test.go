package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reith19/Gaming/config"
	applog "github.com/Reith19/Gaming/log"
	"github.com/Reith19/Gaming/tetris"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	app, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, tetris.DefaultConfig(), app.Game)
	assert.Equal(t, "info", app.Log.Level)
	assert.Equal(t, 30, app.Display.CellSize)
	assert.True(t, app.Display.Ghost)
	assert.Equal(t, 100*time.Millisecond, app.Input.Cooldown)
	assert.False(t, app.Audio.Enabled)
	assert.Equal(t, 44100, app.Audio.SampleRate)
	assert.Zero(t, app.Debug.Seed)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "blockfall.yaml", `
game:
  rows: 16
  cols: 8
  rotation: transpose
  randomizer: bag
  interval: 800ms
log:
  level: debug
input:
  cooldown: 50ms
debug:
  overlay: true
  seed: 42
`)

	app, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, app.Game.Rows)
	assert.Equal(t, 8, app.Game.Cols)
	assert.Equal(t, tetris.RotationTranspose, app.Game.Rotation)
	assert.Equal(t, tetris.RandomBag, app.Game.Randomizer)
	assert.Equal(t, 800*time.Millisecond, app.Game.Interval)
	assert.Equal(t, 100, app.Game.LinePoints)
	assert.Equal(t, "debug", app.Log.Level)
	assert.Equal(t, 50*time.Millisecond, app.Input.Cooldown)
	assert.True(t, app.Debug.Overlay)
	assert.Equal(t, uint64(42), app.Debug.Seed)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "blockfall.yaml", "game:\n  rows: 16\n")
	t.Setenv("BLOCKFALL_GAME_ROWS", "24")
	t.Setenv("BLOCKFALL_LOG_LEVEL", "warn")
	t.Setenv("BLOCKFALL_INPUT_COOLDOWN", "250ms")

	app, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 24, app.Game.Rows)
	assert.Equal(t, "warn", app.Log.Level)
	assert.Equal(t, 250*time.Millisecond, app.Input.Cooldown)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	t.Run("game rules", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "game:\n  cols: 2\n  rotation: srs\n")

		_, err := config.Load(path)
		assert.ErrorIs(t, err, tetris.ErrInvalidDimensions)
		assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
	})

	t.Run("frontend settings", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "display:\n  cellSize: 0\naudio:\n  volume: 2\n")

		_, err := config.Load(path)
		assert.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestNewEngineUsesSeed(t *testing.T) {
	app, err := config.Load("")
	require.NoError(t, err)
	app.Debug.Seed = 1234

	a, err := app.NewEngine(applog.Discard())
	require.NoError(t, err)
	b, err := app.NewEngine(applog.Discard())
	require.NoError(t, err)

	for range 8 {
		require.Equal(t, a.Snapshot().Next, b.Snapshot().Next)
		a.HardDrop()
		b.HardDrop()
	}
	assert.NotEqual(t, a.Session(), b.Session())
}
