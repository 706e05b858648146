package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

func newFloodCmd(a *app) *cobra.Command {
	var (
		at       string
		diagonal bool
	)
	cmd := &cobra.Command{
		Use:   "flood FILE",
		Short: "Measure the region of equal cells containing a coordinate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseCoordinate(at)
			if err != nil {
				return err
			}
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			region, value, err := floodAt(g, start, a.connectivity(cmd, diagonal))
			if err != nil {
				return err
			}
			bounds, _ := region.Bounds()
			slog.Info("flood", "file", args[0], "start", start.String(), "cells", region.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "%q at %v: %d cells, bounds %v %dx%d\n",
				value, start, region.Len(), bounds.Origin, bounds.Size.Width, bounds.Size.Height)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "0,0", "start coordinate as x,y")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow diagonal steps")
	return cmd
}

// floodAt returns the region of cells equal to the value at start.
func floodAt(g *grid.Grid[string], start geom.Coordinate, conn gridgraph.Connectivity) (geom.CoordinateSet, string, error) {
	value, ok := g.Value(start)
	if !ok {
		return nil, "", fmt.Errorf("coordinate %v outside %dx%d grid", start, g.Width(), g.Height())
	}
	return g.FloodSearch(start, conn == gridgraph.Conn8, grid.Equal(value)), value, nil
}
