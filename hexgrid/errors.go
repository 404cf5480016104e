package hexgrid

import "errors"

var (
	// ErrInvalidWidth indicates a grid width that is not an odd positive integer.
	ErrInvalidWidth = errors.New("hexgrid: width must be odd and at least 1")
	// ErrOutOfBounds indicates a write outside the grid.
	ErrOutOfBounds = errors.New("hexgrid: position out of bounds")
	// ErrEmptySymbol indicates an attempt to store the Empty sentinel as a symbol.
	ErrEmptySymbol = errors.New("hexgrid: symbol collides with the empty sentinel")
)
