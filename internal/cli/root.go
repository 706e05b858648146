// Package cli implements the gridtool command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/katalvlaran/gridkit/internal/config"
	"github.com/katalvlaran/gridkit/internal/logging"
	"github.com/katalvlaran/gridkit/parse"
)

// app carries settings shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	cfg        config.Config
}

// Execute runs gridtool with os.Args and closes the log file on return.
func Execute(ctx context.Context) error {
	defer logging.Close()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the gridtool command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	root := &cobra.Command{
		Use:   "gridtool",
		Short: "Inspect grid-shaped puzzle inputs",
		Long: `gridtool parses character or delimited grids and reports their shape,
regions and flood fills, or renders them to PNG.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to gridtool.yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newStatsCmd(a), newFloodCmd(a), newRenderCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := logging.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	a.cfg = cfg
	slog.Debug("configuration loaded", "config", a.configPath, "level", cfg.Logging.Level)
	return nil
}

// loadGrid reads path and builds a grid of string cells using the parse settings.
func (a *app) loadGrid(path string) (*grid.Grid[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := a.cfg.Parse
	rows := parse.Rows(string(data), p.RowSeparator, p.ColumnSeparator, parse.String)
	g, err := grid.New(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("grid loaded", "file", path, "width", g.Width(), "height", g.Height())
	return g, nil
}

// connectivity resolves the --diagonal flag against the configured default.
func (a *app) connectivity(cmd *cobra.Command, flag bool) gridgraph.Connectivity {
	diagonal := a.cfg.Search.Diagonals
	if cmd.Flags().Changed("diagonal") {
		diagonal = flag
	}
	if diagonal {
		return gridgraph.Conn8
	}
	return gridgraph.Conn4
}

// parseCoordinate reads "x,y".
func parseCoordinate(s string) (geom.Coordinate, error) {
	xy := parse.Values(s, ",", parse.Int)
	if len(xy) != 2 {
		return geom.Coordinate{}, fmt.Errorf("invalid coordinate %q, want x,y", s)
	}
	return geom.C(xy[0], xy[1]), nil
}
