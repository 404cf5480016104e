// Package hexgrid treats a square grid of runes as a six-neighbor
// (hex-like) board, the storage layer for spiral-filled symbol grids.
//
// What:
//
//   - Position is an (X, Y) pair; X grows to the Right, Y grows Down.
//   - Direction enumerates the six hex moves: Right, DownRight, Down,
//     Left, UpLeft, Up. Step moves a Position one cell in a Direction.
//   - Grid is an odd-width square of runes; Empty marks a cell that holds
//     no symbol.
//   - Neighbors lists the occupied hex neighbors of a cell in fixed
//     Direction order.
//   - Render prints a Grid row by row (Y as rows, X as columns).
//
// Adjacency (c is the cell, . is not connected):
//
//	UL  U   .
//	L   c   R
//	.   D   DR
//
// Only the diagonal (+1,+1)/(-1,-1) is connected, which skews the square
// lattice into a hexagonal one: every interior cell touches exactly six
// others.
//
// Complexity:
//
//   - Neighbors: O(1) (at most six probes).
//   - Render:    O(W²).
//
// Errors:
//
//   - ErrInvalidWidth: grid width is not an odd positive integer.
//   - ErrOutOfBounds:  a write targets a cell outside the grid.
//   - ErrEmptySymbol:  a write would store the Empty sentinel.
package hexgrid
