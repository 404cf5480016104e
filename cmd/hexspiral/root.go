package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hexspiral/hexgrid"
	"github.com/katalvlaran/hexspiral/internal/config"
	"github.com/katalvlaran/hexspiral/internal/logging"
	"github.com/katalvlaran/hexspiral/spiral"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configFile string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd wires the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "hexspiral",
		Short: "Spiral hex grids: build, locate, trace",
		Long: `hexspiral lays a symbol sequence out on a square grid along an outward
hexagonal spiral (six neighbors per cell) and answers queries against it:
where a symbol sits, which cells neighbor a cell, and whether a word can be
spelled by walking adjacent cells.

Route tracing is greedy: at each step the first matching neighbor in the
order Right, DownRight, Down, Left, UpLeft, Up is taken and never revised.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "config file (YAML)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.String("blank", "", "character printed for empty cells")
	pf.String("separator", "", "string placed between cells of a row")
	pf.Bool("border", true, "frame the grid in a box")
	pf.Bool("highlight", true, "emphasize route cells in trace output")

	root.AddCommand(
		newWidthCmd(a),
		newGridCmd(a),
		newLocateCmd(a),
		newNeighborsCmd(a),
		newTraceCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"render.blank":     "blank",
		"render.separator": "separator",
		"render.border":    "border",
		"render.highlight": "highlight",
	} {
		// Only explicitly set flags override file and env values.
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", flag, err)
			}
		}
	}
	if a.verbose {
		v.Set("log.level", "debug")
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configFile),
		zap.String("blank", cfg.Render.Blank),
		zap.Bool("border", cfg.Render.Border))
	return nil
}

// build runs the spiral builder and logs the layout diagnostics.
func (a *app) build(symbols string) (*hexgrid.Grid, error) {
	g, err := spiral.BuildString(symbols)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("grid built",
		zap.Int("symbols", g.Len()),
		zap.Int("width", g.Width()),
		zap.Stringer("center", g.Center()))
	return g, nil
}
