package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hexspiral/hexgrid"
	"github.com/katalvlaran/hexspiral/route"
)

func newTraceCmd(a *app) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "trace <symbols> <query>",
		Short: "Spell a word by walking adjacent cells",
		Long: `Spell a word by walking adjacent cells, starting from --start or, when
omitted, from the first cell holding the word's first symbol.

The walk is greedy and never backtracks, so it may miss a route that
exists when symbols repeat.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.build(args[0])
			if err != nil {
				return err
			}
			query := []rune(args[1])

			var r route.Route
			if start != "" {
				p, perr := parsePosition(start)
				if perr != nil {
					return perr
				}
				r, err = route.Trace(g, query, p)
			} else {
				r, err = route.TraceFrom(g, query)
			}

			out := cmd.OutOrStdout()
			if err != nil {
				a.logger.Debug("trace failed", zap.String("query", args[1]), zap.Error(err))
				fmt.Fprintf(out, "Route not found: %v\n", err)
				return err
			}

			marked := make(map[hexgrid.Position]bool, len(r))
			for _, p := range r {
				marked[p] = true
			}
			fmt.Fprintf(out, "Found route: %v\n", r)
			fmt.Fprint(out, newGridPrinter(out, a.cfg.Render).Render(g, marked))
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start cell as x,y")
	return cmd
}

// parsePosition reads "x,y".
func parsePosition(s string) (hexgrid.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return hexgrid.Position{}, fmt.Errorf("invalid position %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return hexgrid.Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return hexgrid.Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	return hexgrid.Position{X: x, Y: y}, nil
}
