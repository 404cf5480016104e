package hexgrid

// Neighbors returns the occupied hex neighbors of p, at most six, in
// Direction order: Right, DownRight, Down, Left, UpLeft, Up.
// A candidate is kept only when it lies inside the grid and its cell is
// not Empty. A p outside the grid has no neighbors.
//
// The order is part of the contract: route tracing takes the first match.
//
// Time:   O(1).
// Memory: O(1), one slice of at most six positions.
func Neighbors(g *Grid, p Position) []Position {
	if !g.InBounds(p) {
		return nil
	}
	out := make([]Position, 0, len(directionOffsets))
	for _, d := range Directions() {
		n := Step(p, d)
		if !g.InBounds(n) || g.cells[n.X][n.Y] == Empty {
			continue
		}
		out = append(out, n)
	}
	return out
}
