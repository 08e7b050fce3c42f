package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a seed coordinate lies outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidDimensions is returned for a grid with a non-positive width or height
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
)
