package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/unionpath/gridgraph"
	"github.com/katalvlaran/unionpath/internal/graphfile"
)

var exampleForGridCmd = `ufpath grid map.toml 0 1
  ufpath grid --ties map.toml 0 1
  ufpath grid --connectivity 8 --land-threshold 2 map.yaml 0 2`

func newGridCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "grid FILE SRC DST",
		Short:   "list the islands of a grid and find the cheapest bridge between two of them",
		Example: exampleForGridCmd,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcComp, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrap(err, "source island")
			}
			dstComp, err := strconv.Atoi(args[2])
			if err != nil {
				return errors.Wrap(err, "destination island")
			}
			f, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}

			opts := gridgraph.DefaultGridOptions()
			opts.LandThreshold = a.cfg.LandThreshold
			opts.MaxSteps = a.cfg.MaxDepth
			if a.cfg.Connectivity == 8 {
				opts.Conn = gridgraph.Conn8
			}
			gg, err := gridgraph.NewGridGraph(f.Grid, opts)
			if err != nil {
				return errors.Wrapf(err, "grid in %s", args[0])
			}

			comps := gg.ConnectedComponents()
			logrus.WithField("conn", gg.Conn).Debugf("%dx%d grid, %d islands", gg.Width, gg.Height, len(comps))
			rows := make([][]string, len(comps))
			for i, c := range comps {
				rows[i] = []string{strconv.Itoa(i), strconv.Itoa(len(c)), coords(gg, c)}
			}
			out := cmd.OutOrStdout()
			render(out, a.cfg.Format, []string{"island", "size", "cells"}, rows)

			path, cost, err := gg.ExpandIsland(srcComp, dstComp)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "cost %d\n", cost)
			render(out, a.cfg.Format, []string{"bridge", "cells"}, [][]string{{"1", coords(gg, path)}})

			if ties, _ := cmd.Flags().GetBool("ties"); ties {
				all, err := gg.Bridges(cmd.Context(), srcComp, dstComp)
				if err != nil {
					return err
				}
				if a.cfg.MaxPaths > 0 && len(all) > a.cfg.MaxPaths {
					all = all[:a.cfg.MaxPaths]
				}
				rows = make([][]string, len(all))
				for i, p := range all {
					rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(len(p)), coords(gg, p)}
				}
				render(out, a.cfg.Format, []string{"tie", "cost", "cells"}, rows)
			}
			return nil
		},
	}
	cmd.Flags().Bool("ties", false, "also list the tied bridges of the component-growing search")
	cmd.Flags().Int("land-threshold", 1, "minimum cell value that counts as land")
	cmd.Flags().Int("connectivity", 4, "neighbor connectivity, 4 or 8")
	_ = viper.BindPFlag("land_threshold", cmd.Flags().Lookup("land-threshold"))
	_ = viper.BindPFlag("connectivity", cmd.Flags().Lookup("connectivity"))
	return cmd
}

func coords(gg *gridgraph.GridGraph, cells []int) string {
	if len(cells) == 0 {
		return "-"
	}
	parts := make([]string, len(cells))
	for i, idx := range cells {
		x, y := gg.Coordinate(idx)
		parts[i] = fmt.Sprintf("(%d,%d)", x, y)
	}
	return strings.Join(parts, " ")
}
