package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hexspiral/hexgrid"
	"github.com/katalvlaran/hexspiral/internal/config"
)

// gridPrinter renders grids for one output stream. Colors and text
// attributes follow the capabilities of that stream, so redirected output
// stays plain.
type gridPrinter struct {
	cfg   config.RenderConfig
	frame lipgloss.Style
	mark  lipgloss.Style
}

func newGridPrinter(w io.Writer, cfg config.RenderConfig) *gridPrinter {
	r := lipgloss.NewRenderer(w)
	return &gridPrinter{
		cfg: cfg,
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		mark: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
	}
}

// Render prints g; cells in marked are emphasized when highlighting is on.
func (p *gridPrinter) Render(g *hexgrid.Grid, marked map[hexgrid.Position]bool) string {
	var body string
	if len(marked) == 0 || !p.cfg.Highlight {
		body = hexgrid.Render(g, p.cfg.RenderOptions())
	} else {
		body = p.renderMarked(g, marked)
	}

	if !p.cfg.Border {
		return body
	}
	return p.frame.Render(strings.TrimSuffix(body, "\n")) + "\n"
}

// renderMarked mirrors hexgrid.Render, styling marked cells.
func (p *gridPrinter) renderMarked(g *hexgrid.Grid, marked map[hexgrid.Position]bool) string {
	opts := p.cfg.RenderOptions()
	var sb strings.Builder
	for y := 0; y < g.Width(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				sb.WriteString(opts.Separator)
			}
			pos := hexgrid.Position{X: x, Y: y}
			cell := opts.Blank
			if g.Occupied(pos) {
				cell = g.At(pos)
			}
			if marked[pos] {
				sb.WriteString(p.mark.Render(string(cell)))
			} else {
				sb.WriteRune(cell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
