// Package spiral fills a hexgrid.Grid with a symbol sequence by walking an
// outward hexagonal spiral from the center cell.
//
// What:
//
//   - Capacity / LayersFor / WidthFor size the grid: L concentric layers
//     hold 1 + 3·L·(L−1) cells (1, 7, 19, 37, …), and the grid is 2·L−1
//     cells wide.
//   - Walk lists the spiral visiting order for n symbols.
//   - Build places symbols[i] on the i-th visited cell.
//
// Spiral:
//
//	Q R S . .
//	P F G H .      symbols "ABCDEFGHIJKLMNOPQRS"
//	O E A B I      ring 1: B C D E F G
//	. N D C J      ring 2: H I J K L M N O P Q R S
//	. . M L K
//
// Each ring starts with one step Right off the previous ring, then runs
// DownRight, Down, Left, UpLeft, Up and Right along its six sides.
//
// Complexity:
//
//   - WidthFor: O(√n).
//   - Build:    O(W²) memory for the grid, O(n) placement steps.
//
// Errors:
//
//   - ErrEmptyInput:    the symbol sequence is empty.
//   - ErrInvalidSymbol: a symbol equals hexgrid.Empty.
//   - ErrGridOverflow:  the spiral left the grid (sizing bug; never expected).
package spiral
