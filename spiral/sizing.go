package spiral

import "fmt"

// Capacity returns how many cells the first `layers` rings hold, the
// centered hexagonal number 1 + 3·layers·(layers−1).
// Layer 1 is the center cell; layer k ≥ 2 adds 6·(k−1) cells.
// Non-positive layers hold nothing.
// Complexity: O(1).
func Capacity(layers int) int {
	if layers < 1 {
		return 0
	}
	return 1 + 3*layers*(layers-1)
}

// LayersFor returns the smallest layer count whose Capacity is ≥ n.
// Returns ErrEmptyInput if n < 1.
// Complexity: O(√n).
func LayersFor(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("LayersFor: n=%d: %w", n, ErrEmptyInput)
	}
	layers := 1
	for Capacity(layers) < n {
		layers++
	}
	return layers, nil
}

// WidthFor returns the odd grid width, 2·LayersFor(n)−1, needed to hold n
// symbols. 1 → 1, 2..7 → 3, 8..19 → 5, 20..37 → 7.
// Returns ErrEmptyInput if n < 1.
func WidthFor(n int) (int, error) {
	layers, err := LayersFor(n)
	if err != nil {
		return 0, fmt.Errorf("WidthFor: %w", err)
	}
	return 2*layers - 1, nil
}
