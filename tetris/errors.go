package tetris

import "errors"

var (
	// ErrInvalidDimensions is returned when a board is requested with a
	// non-positive number of rows or columns.
	ErrInvalidDimensions = errors.New("tetris: invalid board dimensions")
	// ErrMalformedShape is returned for empty or ragged shape definitions.
	ErrMalformedShape = errors.New("tetris: malformed shape")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("tetris: invalid config")
)
