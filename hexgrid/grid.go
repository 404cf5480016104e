// Package hexgrid provides the Grid container used by the spiral builder
// and the route tracer. A Grid is:
//
//   - Square, with an odd side length fixed at construction
//   - Addressed by Position{X, Y}, 0 ≤ X, Y < Width
//   - Filled with Empty until a symbol is Set
package hexgrid

import "fmt"

// NewGrid allocates a width×width Grid with every cell set to Empty.
// Returns ErrInvalidWidth if width is not odd and ≥ 1.
// Complexity: O(W²) time and memory.
func NewGrid(width int) (*Grid, error) {
	if width < 1 || width%2 == 0 {
		return nil, fmt.Errorf("NewGrid: width=%d: %w", width, ErrInvalidWidth)
	}
	cells := make([][]rune, width)
	for x := 0; x < width; x++ {
		cells[x] = make([]rune, width)
	}

	return &Grid{width: width, cells: cells}, nil
}

// Width returns the side length of the grid.
func (g *Grid) Width() int {
	return g.width
}

// Center returns the middle cell {Width/2, Width/2}.
func (g *Grid) Center() Position {
	c := g.width / 2
	return Position{X: c, Y: c}
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.width
}

// At returns the symbol stored at p, or Empty when p is vacant or outside
// the grid.
func (g *Grid) At(p Position) rune {
	if !g.InBounds(p) {
		return Empty
	}
	return g.cells[p.X][p.Y]
}

// Occupied reports whether p is inside the grid and holds a symbol.
func (g *Grid) Occupied(p Position) bool {
	return g.At(p) != Empty
}

// Set stores symbol r at p, replacing whatever was there.
// Returns ErrOutOfBounds if p lies outside the grid and ErrEmptySymbol if
// r is the Empty sentinel.
func (g *Grid) Set(p Position, r rune) error {
	if !g.InBounds(p) {
		return fmt.Errorf("Set: position %v in %dx%d grid: %w", p, g.width, g.width, ErrOutOfBounds)
	}
	if r == Empty {
		return fmt.Errorf("Set: position %v: %w", p, ErrEmptySymbol)
	}
	if g.cells[p.X][p.Y] == Empty {
		g.used++
	}
	g.cells[p.X][p.Y] = r

	return nil
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return g.used
}

// Cells returns a deep copy of the cell matrix, indexed [x][y].
// Complexity: O(W²).
func (g *Grid) Cells() [][]rune {
	out := make([][]rune, g.width)
	for x := range g.cells {
		out[x] = make([]rune, g.width)
		copy(out[x], g.cells[x])
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, cells: g.Cells(), used: g.used}
}

// String renders g with DefaultRenderOptions.
func (g *Grid) String() string {
	return Render(g, DefaultRenderOptions())
}
