// Package hexgrid defines the core types of the hexspiral module:
// positions, the six hex directions and the Grid container.
package hexgrid

import "fmt"

// Empty is the cell value for "no symbol placed here".
// It is distinct from every symbol a Grid accepts through Set.
const Empty rune = 0

// Position addresses one grid cell. X grows to the Right, Y grows Down.
// Positions are plain values compared with ==.
type Position struct {
	X, Y int
}

// String renders the position as "{x, y}".
func (p Position) String() string {
	return fmt.Sprintf("{%d, %d}", p.X, p.Y)
}

// Direction selects one of the six hex moves.
// The declaration order is the adjacency order used by Neighbors;
// greedy route tracing depends on it.
type Direction int

const (
	// Right moves (+1, 0).
	Right Direction = iota
	// DownRight moves (+1, +1).
	DownRight
	// Down moves (0, +1).
	Down
	// Left moves (-1, 0).
	Left
	// UpLeft moves (-1, -1).
	UpLeft
	// Up moves (0, -1).
	Up
)

// directionOffsets is indexed by Direction.
var directionOffsets = [...][2]int{
	Right:     {1, 0},
	DownRight: {1, 1},
	Down:      {0, 1},
	Left:      {-1, 0},
	UpLeft:    {-1, -1},
	Up:        {0, -1},
}

var directionNames = [...]string{
	Right:     "Right",
	DownRight: "DownRight",
	Down:      "Down",
	Left:      "Left",
	UpLeft:    "UpLeft",
	Up:        "Up",
}

// Directions returns the six directions in adjacency order.
func Directions() []Direction {
	return []Direction{Right, DownRight, Down, Left, UpLeft, Up}
}

// Valid reports whether d is one of the six declared directions.
func (d Direction) Valid() bool {
	return d >= Right && d <= Up
}

// Offset returns the (dx, dy) displacement of one step in direction d.
// An invalid direction has a zero offset.
func (d Direction) Offset() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Step returns p moved one cell in direction d. It does not check bounds.
// Complexity: O(1).
func Step(p Position, d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a square board of runes with a fixed odd Width.
// cells[x][y] holds the symbol at Position{x, y} or Empty.
// A Grid is not safe for concurrent mutation; readers may share it once
// construction is finished.
type Grid struct {
	width int
	cells [][]rune
	used  int
}
