package route

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hexspiral/hexgrid"
)

const (
	methodTrace     = "Trace"
	methodTraceFrom = "TraceFrom"
)

// Route is an ordered list of cells, one per query symbol.
type Route []hexgrid.Position

// String renders the route as "[{x, y} {x, y} ...]".
func (r Route) String() string {
	parts := make([]string, len(r))
	for i, p := range r {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Symbols reads the route back off g.
func (r Route) Symbols(g *hexgrid.Grid) string {
	var sb strings.Builder
	for _, p := range r {
		sb.WriteRune(g.At(p))
	}
	return sb.String()
}

// Trace spells symbols on g starting at start. symbols[0] must be the
// symbol at start; every following symbol must sit on a hex neighbor of the
// previous cell. Among the neighbors, the first in hexgrid.Neighbors order
// holding the symbol is taken and the choice is never reconsidered: the search
// is greedy and does not backtrack (see the package documentation).
//
// On success the Route has len(symbols) cells and begins at start.
//
// Errors:
//   - ErrEmptyQuery if symbols is empty.
//   - ErrInvalidStart if start is outside g, start is empty, or
//     g.At(start) != symbols[0].
//   - ErrPathNotFound, wrapped with the failing index and symbol, if some
//     symbol has no matching neighbor.
//
// Complexity: O(len(symbols)) time, O(len(symbols)) memory.
func Trace(g *hexgrid.Grid, symbols []rune, start hexgrid.Position) (Route, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%s: %w", methodTrace, ErrEmptyQuery)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%s: start %v outside %dx%d grid: %w",
			methodTrace, start, g.Width(), g.Width(), ErrInvalidStart)
	}
	if !g.Occupied(start) {
		return nil, fmt.Errorf("%s: start %v is empty: %w", methodTrace, start, ErrInvalidStart)
	}
	if got := g.At(start); got != symbols[0] {
		return nil, fmt.Errorf("%s: start %v holds %q, want %q: %w",
			methodTrace, start, got, symbols[0], ErrInvalidStart)
	}

	r := make(Route, 1, len(symbols))
	r[0] = start
	cur := start
	for i := 1; i < len(symbols); i++ {
		next, ok := firstMatch(g, cur, symbols[i])
		if !ok {
			return nil, fmt.Errorf("%s: symbol %d %q after %v: %w",
				methodTrace, i, symbols[i], cur, ErrPathNotFound)
		}
		r = append(r, next)
		cur = next
	}

	return r, nil
}

// firstMatch returns the first neighbor of p holding want.
func firstMatch(g *hexgrid.Grid, p hexgrid.Position, want rune) (hexgrid.Position, bool) {
	for _, n := range hexgrid.Neighbors(g, p) {
		if g.At(n) == want {
			return n, true
		}
	}
	return hexgrid.Position{}, false
}

// TraceFrom locates symbols[0] with Locate and traces from that cell.
// Returns ErrEmptyQuery for an empty query, ErrTileNotFound when no cell
// holds symbols[0], and otherwise whatever Trace returns.
func TraceFrom(g *hexgrid.Grid, symbols []rune) (Route, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%s: %w", methodTraceFrom, ErrEmptyQuery)
	}
	start, ok := Locate(g, symbols[0])
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", methodTraceFrom, symbols[0], ErrTileNotFound)
	}
	r, err := Trace(g, symbols, start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodTraceFrom, err)
	}
	return r, nil
}
