package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hexspiral/spiral"
)

func newWidthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "width <n>",
		Short: "Print the grid width needed for n symbols",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid symbol count %q: %w", args[0], err)
			}
			w, err := spiral.WidthFor(n)
			if err != nil {
				return err
			}
			layers, _ := spiral.LayersFor(n)
			a.logger.Debug("sized", zap.Int("n", n), zap.Int("layers", layers))
			fmt.Fprintln(cmd.OutOrStdout(), w)
			return nil
		},
	}
}

func newGridCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grid <symbols>",
		Short: "Build and print the spiral grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.build(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Center: %v\n", g.Center())
			fmt.Fprint(out, newGridPrinter(out, a.cfg.Render).Render(g, nil))
			return nil
		},
	}
}
