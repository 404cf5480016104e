package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexspiral/hexgrid"
	"github.com/katalvlaran/hexspiral/route"
	"github.com/katalvlaran/hexspiral/spiral"
)

const alphabet19 = "ABCDEFGHIJKLMNOPQRS"

// build is a test helper around spiral.BuildString.
func build(t testing.TB, s string) *hexgrid.Grid {
	t.Helper()
	g, err := spiral.BuildString(s)
	require.NoError(t, err)
	return g
}

// TestLocate looks up corner, edge, center and absent tiles.
func TestLocate(t *testing.T) {
	g := build(t, alphabet19)

	cases := []struct {
		symbol rune
		want   hexgrid.Position
		found  bool
	}{
		{'A', hexgrid.Position{X: 2, Y: 2}, true},
		{'D', hexgrid.Position{X: 2, Y: 3}, true},
		{'K', hexgrid.Position{X: 4, Y: 4}, true},
		{'Q', hexgrid.Position{X: 0, Y: 0}, true},
		{'Z', hexgrid.Position{}, false},
		{hexgrid.Empty, hexgrid.Position{}, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.symbol), func(t *testing.T) {
			got, ok := route.Locate(g, tc.symbol)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLocate_RoundTrip checks that the first symbol is always found at the center.
func TestLocate_RoundTrip(t *testing.T) {
	for n := 1; n <= len(alphabet19); n++ {
		g := build(t, alphabet19[:n])
		p, ok := route.Locate(g, 'A')
		require.True(t, ok)
		assert.Equal(t, g.Center(), p, "n=%d", n)
	}
}

// TestLocate_ScanOrder pins X-major order when symbols repeat.
// "ABAA": A(1,1) B(2,1) A(2,2) A(1,2).
func TestLocate_ScanOrder(t *testing.T) {
	g := build(t, "ABAA")

	p, ok := route.Locate(g, 'A')
	require.True(t, ok)
	assert.Equal(t, hexgrid.Position{X: 1, Y: 1}, p)

	all := route.LocateAll(g, 'A')
	want := []hexgrid.Position{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	assert.Equal(t, want, all)

	assert.Empty(t, route.LocateAll(g, 'Z'))
	assert.Empty(t, route.LocateAll(g, hexgrid.Empty))
}
