// Package route answers queries against a spiral-filled hexgrid.Grid:
// where a symbol sits, and whether a symbol sequence can be spelled by
// walking hex-adjacent cells.
//
// What:
//
//   - Locate / LocateAll scan the grid X-major (X outer, Y inner) for a
//     symbol. With duplicate symbols the scan order decides which cell
//     Locate returns.
//   - Trace spells a sequence from a given start cell, one hex step per
//     symbol.
//   - TraceFrom locates the first symbol and then traces from there.
//
// Greedy tracing:
//
//	Trace commits to the FIRST neighbor, in hexgrid.Neighbors order,
//	holding the next symbol and never reconsiders that choice. When
//	symbols repeat, it can report ErrPathNotFound although another choice
//	of neighbor would have spelled the whole sequence. This is the
//	documented behavior, not an approximation of a complete search.
//
//	Cells may be revisited: "ABA" is a valid route A→B→A.
//
// Complexity:
//
//   - Locate:    O(W²).
//   - Trace:     O(len(symbols)), at most six probes per symbol.
//
// Errors:
//
//   - ErrEmptyQuery:   the query sequence is empty.
//   - ErrInvalidStart: the start cell is off-grid, empty, or does not hold
//     symbols[0].
//   - ErrPathNotFound: no neighbor holds the next symbol.
//   - ErrTileNotFound: TraceFrom found no cell holding symbols[0].
package route
