package hexgrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexspiral/hexgrid"
)

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

// layout19 is the spiral placement of "ABCDEFGHIJKLMNOPQRS" on a 5×5 grid.
var layout19 = map[rune]hexgrid.Position{
	'A': {2, 2}, 'B': {3, 2}, 'C': {3, 3}, 'D': {2, 3}, 'E': {1, 2},
	'F': {1, 1}, 'G': {2, 1}, 'H': {3, 1}, 'I': {4, 2}, 'J': {4, 3},
	'K': {4, 4}, 'L': {3, 4}, 'M': {2, 4}, 'N': {1, 3}, 'O': {0, 2},
	'P': {0, 1}, 'Q': {0, 0}, 'R': {1, 0}, 'S': {2, 0},
}

// newGrid builds a width×width grid and places every symbol of cells.
func newGrid(t testing.TB, width int, cells map[rune]hexgrid.Position) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.NewGrid(width)
	require.NoError(t, err)
	for r, p := range cells {
		require.NoError(t, g.Set(p, r))
	}
	return g
}

//----------------------------------------------------------------------------//
// NewGrid / Set / At
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that even and non-positive widths are rejected.
func TestNewGrid_Errors(t *testing.T) {
	for _, w := range []int{-3, -1, 0, 2, 4, 10} {
		_, err := hexgrid.NewGrid(w)
		if !errors.Is(err, hexgrid.ErrInvalidWidth) {
			t.Errorf("NewGrid(%d) error = %v; want %v", w, err, hexgrid.ErrInvalidWidth)
		}
	}
}

// TestNewGrid_Empty checks that a fresh grid is fully Empty and centered.
func TestNewGrid_Empty(t *testing.T) {
	g, err := hexgrid.NewGrid(5)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, hexgrid.Position{X: 2, Y: 2}, g.Center())
	assert.Zero(t, g.Len())
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			assert.False(t, g.Occupied(hexgrid.Position{X: x, Y: y}), "cell (%d,%d)", x, y)
		}
	}
}

// TestInBounds checks the boundary of a 3×3 grid.
func TestInBounds(t *testing.T) {
	g, err := hexgrid.NewGrid(3)
	require.NoError(t, err)

	valid := []hexgrid.Position{{0, 0}, {2, 2}, {1, 0}, {0, 2}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []hexgrid.Position{{-1, 0}, {3, 0}, {0, 3}, {1, -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
		assert.Equal(t, hexgrid.Empty, g.At(p))
	}
}

// TestSet covers overwrite accounting and the two write errors.
func TestSet(t *testing.T) {
	g, err := hexgrid.NewGrid(3)
	require.NoError(t, err)

	p := hexgrid.Position{X: 1, Y: 2}
	require.NoError(t, g.Set(p, 'x'))
	require.NoError(t, g.Set(p, 'y'))
	assert.Equal(t, 'y', g.At(p))
	assert.Equal(t, 1, g.Len())

	assert.ErrorIs(t, g.Set(hexgrid.Position{X: 3, Y: 0}, 'z'), hexgrid.ErrOutOfBounds)
	assert.ErrorIs(t, g.Set(p, hexgrid.Empty), hexgrid.ErrEmptySymbol)
	assert.Equal(t, 'y', g.At(p))
}

// TestCloneIndependent ensures Clone and Cells never alias the source grid.
func TestCloneIndependent(t *testing.T) {
	g := newGrid(t, 3, map[rune]hexgrid.Position{'A': {1, 1}})
	c := g.Clone()
	require.NoError(t, c.Set(hexgrid.Position{X: 0, Y: 0}, 'B'))

	cells := g.Cells()
	cells[1][1] = 'Z'

	assert.Equal(t, 'A', g.At(hexgrid.Position{X: 1, Y: 1}))
	assert.False(t, g.Occupied(hexgrid.Position{X: 0, Y: 0}))
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 2, c.Len())
}

//----------------------------------------------------------------------------//
// Directions
//----------------------------------------------------------------------------//

// TestStep checks every offset and that the six steps from a cell are distinct.
func TestStep(t *testing.T) {
	origin := hexgrid.Position{X: 5, Y: 5}
	want := map[hexgrid.Direction]hexgrid.Position{
		hexgrid.Right:     {6, 5},
		hexgrid.DownRight: {6, 6},
		hexgrid.Down:      {5, 6},
		hexgrid.Left:      {4, 5},
		hexgrid.UpLeft:    {4, 4},
		hexgrid.Up:        {5, 4},
	}
	for d, p := range want {
		assert.Equal(t, p, hexgrid.Step(origin, d), d.String())
	}
	assert.Equal(t, origin, hexgrid.Step(origin, hexgrid.Direction(42)))
}

// TestDirectionsOrder pins the adjacency order.
func TestDirectionsOrder(t *testing.T) {
	got := hexgrid.Directions()
	want := []hexgrid.Direction{
		hexgrid.Right, hexgrid.DownRight, hexgrid.Down,
		hexgrid.Left, hexgrid.UpLeft, hexgrid.Up,
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "DownRight", hexgrid.DownRight.String())
	assert.Equal(t, "Direction(9)", hexgrid.Direction(9).String())
}

// TestOppositeDirections verifies the lattice is symmetric: each step has
// an inverse among the six.
func TestOppositeDirections(t *testing.T) {
	origin := hexgrid.Position{X: 3, Y: 3}
	for _, d := range hexgrid.Directions() {
		moved := hexgrid.Step(origin, d)
		back := false
		for _, e := range hexgrid.Directions() {
			if hexgrid.Step(moved, e) == origin {
				back = true
			}
		}
		assert.True(t, back, "no inverse for %v", d)
	}
}
