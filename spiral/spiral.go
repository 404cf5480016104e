// SPDX-License-Identifier: MIT
// Package: hexspiral/spiral
//
// spiral.go — Walk and Build.
//
// Contract:
//   • symbols[0] lands on the center {W/2, W/2}.
//   • symbols[i] lands on the i-th position of Walk(len(symbols)).
//   • Each ring `layer` (1, 2, …) is traced as:
//       Right ×1, DownRight ×(layer−1), Down ×layer, Left ×layer,
//       UpLeft ×layer, Up ×layer, Right ×layer.
//     The single Right step already enters the new ring, hence layer−1
//     DownRight steps.
//   • The walk stops the moment the sequence is exhausted.
//   • Never panics; an off-grid step is reported as ErrGridOverflow.
//
// Determinism:
//   • The visiting order depends only on len(symbols).

package spiral

import (
	"fmt"

	"github.com/katalvlaran/hexspiral/hexgrid"
)

const (
	methodWalk  = "Walk"
	methodBuild = "Build"
)

// leg is one side of a ring: a direction and how many steps to take.
type leg struct {
	dir   hexgrid.Direction
	steps int
}

// ringLegs returns the seven legs that trace ring `layer`.
func ringLegs(layer int) [7]leg {
	return [7]leg{
		{hexgrid.Right, 1},
		{hexgrid.DownRight, layer - 1},
		{hexgrid.Down, layer},
		{hexgrid.Left, layer},
		{hexgrid.UpLeft, layer},
		{hexgrid.Up, layer},
		{hexgrid.Right, layer},
	}
}

// Walk returns the first n positions of the spiral on a WidthFor(n) grid,
// starting at the center.
// Returns ErrEmptyInput if n < 1.
// Complexity: O(n).
func Walk(n int) ([]hexgrid.Position, error) {
	width, err := WidthFor(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWalk, err)
	}
	return walk(n, width)
}

// walk traces n positions inside a width×width board.
func walk(n, width int) ([]hexgrid.Position, error) {
	c := width / 2
	cursor := hexgrid.Position{X: c, Y: c}
	out := make([]hexgrid.Position, 0, n)
	out = append(out, cursor)

	for layer := 1; len(out) < n; layer++ {
		for _, l := range ringLegs(layer) {
			for s := 0; s < l.steps && len(out) < n; s++ {
				cursor = hexgrid.Step(cursor, l.dir)
				if cursor.X < 0 || cursor.X >= width || cursor.Y < 0 || cursor.Y >= width {
					return nil, fmt.Errorf("%s: step %d (%v, layer %d) reaches %v in %dx%d grid: %w",
						methodWalk, len(out), l.dir, layer, cursor, width, width, ErrGridOverflow)
				}
				out = append(out, cursor)
			}
		}
	}

	return out, nil
}

// Build allocates a WidthFor(len(symbols)) grid and places the symbols
// along the spiral. The caller owns the returned grid.
//
// Returns ErrEmptyInput for an empty sequence and ErrInvalidSymbol if any
// symbol equals hexgrid.Empty.
// Complexity: O(W²) time and memory.
func Build(symbols []rune) (*hexgrid.Grid, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrEmptyInput)
	}
	for i, r := range symbols {
		if r == hexgrid.Empty {
			return nil, fmt.Errorf("%s: symbol %d: %w", methodBuild, i, ErrInvalidSymbol)
		}
	}

	width, err := WidthFor(len(symbols))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	g, err := hexgrid.NewGrid(width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	path, err := walk(len(symbols), width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	for i, p := range path {
		if err = g.Set(p, symbols[i]); err != nil {
			return nil, fmt.Errorf("%s: symbol %d: %w", methodBuild, i, err)
		}
	}

	return g, nil
}

// BuildString is Build over the runes of s.
func BuildString(s string) (*hexgrid.Grid, error) {
	return Build([]rune(s))
}
