package route

import "github.com/katalvlaran/hexspiral/hexgrid"

// Locate returns the first cell holding symbol, scanning X ascending in the
// outer loop and Y ascending in the inner loop. The bool is false when no
// cell matches; that is a normal outcome, not an error.
// Searching for hexgrid.Empty never matches.
// Complexity: O(W²).
func Locate(g *hexgrid.Grid, symbol rune) (hexgrid.Position, bool) {
	if symbol == hexgrid.Empty {
		return hexgrid.Position{}, false
	}
	w := g.Width()
	for x := 0; x < w; x++ {
		for y := 0; y < w; y++ {
			p := hexgrid.Position{X: x, Y: y}
			if g.At(p) == symbol {
				return p, true
			}
		}
	}
	return hexgrid.Position{}, false
}

// LocateAll returns every cell holding symbol in Locate's scan order.
// Complexity: O(W²).
func LocateAll(g *hexgrid.Grid, symbol rune) []hexgrid.Position {
	if symbol == hexgrid.Empty {
		return nil
	}
	var out []hexgrid.Position
	w := g.Width()
	for x := 0; x < w; x++ {
		for y := 0; y < w; y++ {
			p := hexgrid.Position{X: x, Y: y}
			if g.At(p) == symbol {
				out = append(out, p)
			}
		}
	}
	return out
}
