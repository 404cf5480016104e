package hexgrid

import "strings"

// RenderOptions controls the textual form produced by Render.
type RenderOptions struct {
	// Blank is printed for Empty cells.
	Blank rune
	// Separator is placed between the cells of a row.
	Separator string
}

// DefaultRenderOptions returns RenderOptions{Blank: ' ', Separator: " "}.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Blank:     ' ',
		Separator: " ",
	}
}

// Render prints g one row per line: Y selects the row, X the column.
// Every line, the last included, ends with '\n'.
// A zero Blank falls back to the default blank.
// Complexity: O(W²).
func Render(g *Grid, opts RenderOptions) string {
	if opts.Blank == Empty {
		opts.Blank = DefaultRenderOptions().Blank
	}
	var sb strings.Builder
	for y := 0; y < g.width; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteString(opts.Separator)
			}
			r := g.cells[x][y]
			if r == Empty {
				r = opts.Blank
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
