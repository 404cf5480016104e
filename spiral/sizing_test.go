package spiral_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexspiral/spiral"
)

// TestWidthFor_Table pins the width bands: 1, 2..7, 8..19, 20..37.
func TestWidthFor_Table(t *testing.T) {
	cases := []struct {
		lo, hi, want int
	}{
		{1, 1, 1},
		{2, 7, 3},
		{8, 19, 5},
		{20, 37, 7},
		{38, 61, 9},
	}
	for _, tc := range cases {
		for n := tc.lo; n <= tc.hi; n++ {
			got, err := spiral.WidthFor(n)
			require.NoError(t, err, "n=%d", n)
			assert.Equal(t, tc.want, got, "WidthFor(%d)", n)
		}
	}
}

// TestWidthFor_Empty verifies zero and negative lengths are rejected.
func TestWidthFor_Empty(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := spiral.WidthFor(n)
		if !errors.Is(err, spiral.ErrEmptyInput) {
			t.Errorf("WidthFor(%d) error = %v; want %v", n, err, spiral.ErrEmptyInput)
		}
	}
}

// TestWidthFor_Properties sweeps n and checks oddness, capacity and monotonicity.
func TestWidthFor_Properties(t *testing.T) {
	prev := 0
	for n := 1; n <= 2000; n++ {
		w, err := spiral.WidthFor(n)
		require.NoError(t, err)
		assert.Equal(t, 1, w%2, "WidthFor(%d)=%d is even", n, w)
		assert.GreaterOrEqual(t, w*w, n)
		assert.GreaterOrEqual(t, w, prev, "WidthFor not monotone at n=%d", n)
		prev = w
	}
}

// TestLayersFor_Minimal checks that LayersFor returns the smallest fitting count.
func TestLayersFor_Minimal(t *testing.T) {
	for n := 1; n <= 500; n++ {
		l, err := spiral.LayersFor(n)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, spiral.Capacity(l), n)
		assert.Less(t, spiral.Capacity(l-1), n)
	}
}

// TestCapacity lists the first centered hexagonal numbers.
func TestCapacity(t *testing.T) {
	want := []int{0, 1, 7, 19, 37, 61, 91}
	for l, c := range want {
		assert.Equal(t, c, spiral.Capacity(l), "Capacity(%d)", l)
	}
	assert.Zero(t, spiral.Capacity(-2))
}
