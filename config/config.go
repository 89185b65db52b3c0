// Package config loads blockfall settings from a file and BLOCKFALL_*
// environment variables on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/Reith19/Gaming/tetris"
)

// EnvPrefix prefixes every environment override, e.g. BLOCKFALL_GAME_ROWS.
const EnvPrefix = "BLOCKFALL"

type App struct {
	Game    tetris.Config `mapstructure:"game"`
	Log     LogConf       `mapstructure:"log"`
	Display DisplayConf   `mapstructure:"display"`
	Input   InputConf     `mapstructure:"input"`
	Audio   AudioConf     `mapstructure:"audio"`
	Debug   DebugConf     `mapstructure:"debug"`
}

type LogConf struct {
	Level  string `mapstructure:"level"`
	Caller bool   `mapstructure:"caller"`
}

type DisplayConf struct {
	Title    string `mapstructure:"title"`
	CellSize int    `mapstructure:"cellSize"`
	Ghost    bool   `mapstructure:"ghost"`
}

type InputConf struct {
	// Cooldown is the minimum time between two commands from the same key.
	Cooldown time.Duration `mapstructure:"cooldown"`
}

type AudioConf struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate int     `mapstructure:"sampleRate"`
	Volume     float64 `mapstructure:"volume"`
}

type DebugConf struct {
	Overlay bool `mapstructure:"overlay"`
	// Seed fixes the piece sequence. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

// ErrInvalid wraps every non-game validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the game rules and the frontend settings.
func (a App) Validate() error {
	var errs []error
	if err := a.Game.Validate(); err != nil {
		errs = append(errs, err)
	}
	if a.Display.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: display.cellSize must be positive, got %d", ErrInvalid, a.Display.CellSize))
	}
	if a.Input.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("%w: negative input.cooldown", ErrInvalid))
	}
	if a.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: audio.sampleRate must be positive, got %d", ErrInvalid, a.Audio.SampleRate))
	}
	if a.Audio.Volume < 0 || a.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: audio.volume %g outside [0, 1]", ErrInvalid, a.Audio.Volume))
	}
	return errors.Join(errs...)
}

// NewEngine builds an engine from the game rules, seeding the piece sequence
// from debug.seed when it is set.
func (a App) NewEngine(logger *log.Logger) (*tetris.Engine, error) {
	opts := []tetris.Option{tetris.WithLogger(logger)}
	if a.Debug.Seed != 0 {
		opts = append(opts, tetris.WithRand(rand.New(rand.NewPCG(a.Debug.Seed, a.Debug.Seed))))
	}
	return tetris.New(a.Game, opts...)
}

func setDefaults(v *viper.Viper) {
	game := tetris.DefaultConfig()
	v.SetDefault("game.rows", game.Rows)
	v.SetDefault("game.cols", game.Cols)
	v.SetDefault("game.spawnRow", game.SpawnRow)
	v.SetDefault("game.allowAboveTop", game.AllowAboveTop)
	v.SetDefault("game.rotation", string(game.Rotation))
	v.SetDefault("game.randomizer", string(game.Randomizer))
	v.SetDefault("game.interval", game.Interval)
	v.SetDefault("game.speedFactor", game.SpeedFactor)
	v.SetDefault("game.minInterval", game.MinInterval)
	v.SetDefault("game.linePoints", game.LinePoints)
	v.SetDefault("game.linesPerLevel", game.LinesPerLevel)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.caller", false)

	v.SetDefault("display.title", "Blockfall")
	v.SetDefault("display.cellSize", 30)
	v.SetDefault("display.ghost", true)

	v.SetDefault("input.cooldown", 100*time.Millisecond)

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.sampleRate", 44100)
	v.SetDefault("audio.volume", 0.3)

	v.SetDefault("debug.overlay", false)
	v.SetDefault("debug.seed", 0)
}

// Loader reads one config file. An empty path uses defaults and the
// environment only.
type Loader struct {
	v    *viper.Viper
	path string
}

func NewLoader(path string) *Loader {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	}
	return &Loader{v: v, path: path}
}

// Load reads the file, applies environment overrides and validates the result.
func (l *Loader) Load() (App, error) {
	if l.path != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return App{}, fmt.Errorf("read config %s: %w", l.path, err)
		}
	}
	return l.decode()
}

func (l *Loader) decode() (App, error) {
	var app App
	if err := l.v.Unmarshal(&app); err != nil {
		return App{}, fmt.Errorf("decode config: %w", err)
	}
	if err := app.Validate(); err != nil {
		return App{}, err
	}
	return app, nil
}

// Watch calls fn with the reloaded settings every time the file changes. It
// does nothing without a file. Call Load first.
func (l *Loader) Watch(fn func(App, error)) {
	if l.path == "" {
		return
	}
	l.v.OnConfigChange(func(in fsnotify.Event) {
		if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) {
			return
		}
		fn(l.decode())
	})
	l.v.WatchConfig()
}

// Load is NewLoader(path).Load().
func Load(path string) (App, error) {
	return NewLoader(path).Load()
}
