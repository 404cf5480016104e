package route

import "errors"

var (
	// ErrEmptyQuery indicates a zero-length query sequence.
	ErrEmptyQuery = errors.New("route: query must contain at least one symbol")
	// ErrInvalidStart indicates the start cell does not hold the first query symbol.
	ErrInvalidStart = errors.New("route: invalid start")
	// ErrPathNotFound indicates the greedy walk could not extend the route.
	ErrPathNotFound = errors.New("route: path not found")
	// ErrTileNotFound indicates no cell holds the requested symbol.
	ErrTileNotFound = errors.New("route: tile not found")
)
