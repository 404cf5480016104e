// SPDX-License-Identifier: MIT
// Package: hexspiral/spiral
//
// errors.go — sentinel errors for the spiral package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package spiral

import "errors"

// ErrEmptyInput indicates a zero-length symbol sequence (or a non-positive
// length passed to the sizing functions).
var ErrEmptyInput = errors.New("spiral: input must contain at least one symbol")

// ErrInvalidSymbol indicates a symbol equal to the hexgrid.Empty sentinel.
var ErrInvalidSymbol = errors.New("spiral: symbol collides with the empty sentinel")

// ErrGridOverflow indicates the spiral walked off the grid. WidthFor and
// Walk always agree, so this marks an internal sizing fault.
var ErrGridOverflow = errors.New("spiral: grid too small for input")
