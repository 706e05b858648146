package cli

import (
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// valueStats summarises one distinct cell value.
type valueStats struct {
	value   string
	cells   int
	regions int
}

// fileStats summarises one input file.
type fileStats struct {
	path          string
	width, height int
	values        []valueStats
}

func newStatsCmd(a *app) *cobra.Command {
	var diagonal bool
	cmd := &cobra.Command{
		Use:   "stats FILE...",
		Short: "Report size, distinct values and region counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn := a.connectivity(cmd, diagonal)
			results := make([]fileStats, len(args))

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(runtime.NumCPU())
			for i, path := range args {
				eg.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					g, err := a.loadGrid(path)
					if err != nil {
						return err
					}
					results[i] = analyze(path, g, conn)
					slog.Info("analyzed", "file", path, "values", len(results[i].values))
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprint(out, r.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "count 8-connected regions")
	return cmd
}

func analyze(path string, g *grid.Grid[string], conn gridgraph.Connectivity) fileStats {
	counts := make(map[string]int)
	for _, v := range g.All() {
		counts[v]++
	}
	fs := fileStats{path: path, width: g.Width(), height: g.Height()}
	for v, n := range counts {
		regions := gridgraph.Components(g, grid.Equal(v), conn)
		fs.values = append(fs.values, valueStats{value: v, cells: n, regions: len(regions)})
	}
	sort.Slice(fs.values, func(i, j int) bool { return fs.values[i].value < fs.values[j].value })
	return fs
}

func (fs fileStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %dx%d, %d distinct values\n", fs.path, fs.width, fs.height, len(fs.values))
	for _, v := range fs.values {
		fmt.Fprintf(&b, "  %q: %d cells, %d regions\n", v.value, v.cells, v.regions)
	}
	return b.String()
}
