package tetris

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the engine's rules. Field tags let the config package decode it
// straight from a file.
type Config struct {
	Rows          int            `mapstructure:"rows"`
	Cols          int            `mapstructure:"cols"`
	SpawnRow      int            `mapstructure:"spawnRow"`
	AllowAboveTop bool           `mapstructure:"allowAboveTop"`
	Rotation      RotationPolicy `mapstructure:"rotation"`
	Randomizer    Randomizer     `mapstructure:"randomizer"`

	Interval    time.Duration `mapstructure:"interval"`
	SpeedFactor float64       `mapstructure:"speedFactor"`
	MinInterval time.Duration `mapstructure:"minInterval"`

	LinePoints    int `mapstructure:"linePoints"`
	LinesPerLevel int `mapstructure:"linesPerLevel"`
}

// DefaultConfig returns the classic 20×10 well with a 1.5s starting fall
// interval and 100 points per line.
func DefaultConfig() Config {
	return Config{
		Rows:          20,
		Cols:          10,
		SpawnRow:      0,
		AllowAboveTop: true,
		Rotation:      RotationMatrix,
		Randomizer:    RandomUniform,
		Interval:      1500 * time.Millisecond,
		SpeedFactor:   0.9,
		MinInterval:   100 * time.Millisecond,
		LinePoints:    100,
		LinesPerLevel: 10,
	}
}

// Validate reports every problem with c, joined into one error wrapping
// ErrInvalidConfig or ErrInvalidDimensions.
func (c Config) Validate() error {
	var errs []error

	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Rows, c.Cols))
	}
	if c.Cols > 0 && c.Cols < 4 {
		errs = append(errs, fmt.Errorf("%w: %d columns cannot hold an I piece", ErrInvalidDimensions, c.Cols))
	}
	if tallest := tallestShape(); c.Rows > 0 && c.SpawnRow+tallest > c.Rows {
		errs = append(errs, fmt.Errorf("%w: spawn row %d leaves no room for a %d-row piece in %d rows",
			ErrInvalidConfig, c.SpawnRow, tallest, c.Rows))
	}
	if c.SpawnRow < 0 && !c.AllowAboveTop {
		errs = append(errs, fmt.Errorf("%w: spawn row %d is above the top but cells above the top are not allowed",
			ErrInvalidConfig, c.SpawnRow))
	}
	if !c.Rotation.Valid() {
		errs = append(errs, fmt.Errorf("%w: unknown rotation policy %q", ErrInvalidConfig, c.Rotation))
	}
	if !c.Randomizer.Valid() {
		errs = append(errs, fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, c.Randomizer))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidConfig, c.Interval))
	}
	if c.MinInterval <= 0 || c.MinInterval > c.Interval {
		errs = append(errs, fmt.Errorf("%w: min interval %s outside (0, %s]", ErrInvalidConfig, c.MinInterval, c.Interval))
	}
	if c.SpeedFactor <= 0 || c.SpeedFactor > 1 {
		errs = append(errs, fmt.Errorf("%w: speed factor %g outside (0, 1]", ErrInvalidConfig, c.SpeedFactor))
	}
	if c.LinePoints < 0 {
		errs = append(errs, fmt.Errorf("%w: negative line points", ErrInvalidConfig))
	}
	if c.LinesPerLevel < 0 {
		errs = append(errs, fmt.Errorf("%w: negative lines per level", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// tallestShape returns the height of the tallest piece in spawn orientation.
func tallestShape() int {
	h := 0
	for _, k := range Kinds {
		h = max(h, BaseShape(k).Rows())
	}
	return h
}

func (c Config) speedCurve() SpeedCurve {
	return SpeedCurve{Interval: c.Interval, SpeedFactor: c.SpeedFactor, MinInterval: c.MinInterval}
}

func (c Config) scorer() Scorer {
	return Scorer{LinePoints: c.LinePoints, LinesPerLevel: c.LinesPerLevel}
}

func (c Config) validator() Validator {
	return Validator{AllowAboveTop: c.AllowAboveTop}
}
