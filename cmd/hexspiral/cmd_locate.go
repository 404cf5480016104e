package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hexspiral/hexgrid"
	"github.com/katalvlaran/hexspiral/route"
)

func newLocateCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "locate <symbols> <symbol>",
		Short: "Find the cell holding a symbol",
		Long: `Find the cell holding a symbol. Cells are scanned X-major (X outer,
Y inner); with duplicate symbols the first hit in that order is reported
unless --all is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if utf8.RuneCountInString(args[1]) != 1 {
				return fmt.Errorf("symbol must be exactly one character, got %q", args[1])
			}
			g, err := a.build(args[0])
			if err != nil {
				return err
			}
			symbol, _ := utf8.DecodeRuneInString(args[1])
			out := cmd.OutOrStdout()

			if all {
				ps := route.LocateAll(g, symbol)
				if len(ps) == 0 {
					fmt.Fprintln(out, "Tile not found.")
					return nil
				}
				for _, p := range ps {
					fmt.Fprintf(out, "Found tile: %v\n", p)
				}
				return nil
			}

			p, ok := route.Locate(g, symbol)
			if !ok {
				a.logger.Debug("tile not found", zap.String("symbol", args[1]))
				fmt.Fprintln(out, "Tile not found.")
				return nil
			}
			fmt.Fprintf(out, "Found tile: %v\n", p)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every matching cell")
	return cmd
}

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <symbols> <x> <y>",
		Short: "List the occupied hex neighbors of a cell",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[1], err)
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[2], err)
			}
			g, err := a.build(args[0])
			if err != nil {
				return err
			}
			p := hexgrid.Position{X: x, Y: y}
			if !g.InBounds(p) {
				return fmt.Errorf("cell %v: %w", p, hexgrid.ErrOutOfBounds)
			}

			ns := hexgrid.Neighbors(g, p)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Neighbors of %v: %d\n", p, len(ns))
			for _, n := range ns {
				fmt.Fprintf(out, "  %v %c\n", n, g.At(n))
			}
			return nil
		},
	}
}
