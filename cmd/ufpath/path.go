package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/unionpath/internal/graphfile"
	"github.com/katalvlaran/unionpath/pathfind"
)

var exampleForPathCmd = `ufpath path universe.toml a e
  ufpath path --max-paths 1 universe.yaml a e`

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "path FILE SRC DEST",
		Short:   "find the shortest chains of new items the search finds between two components",
		Example: exampleForPathCmd,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}
			u, err := f.Build()
			if err != nil {
				return err
			}
			src, ok := u.Lookup(args[1])
			if !ok {
				return errors.Errorf("unknown source item %q", args[1])
			}
			dest, ok := u.Lookup(args[2])
			if !ok {
				return errors.Errorf("unknown destination item %q", args[2])
			}

			res, err := pathfind.FindPath(u.Set, u.Candidates(), src, dest,
				pathfind.WithContext[graphfile.Node](cmd.Context()),
				pathfind.WithMaxPaths[graphfile.Node](a.cfg.MaxPaths),
				pathfind.WithMaxDepth[graphfile.Node](a.cfg.MaxDepth),
				pathfind.WithOnExpand(func(n graphfile.Node, depth int) {
					logrus.WithField("depth", depth).Debugf("expand %s", n.Name)
				}),
			)
			if err != nil {
				return errors.Wrap(err, "search")
			}
			out := cmd.OutOrStdout()
			if !res.Found {
				logrus.WithField("src", src.Name).WithField("dest", dest.Name).Warn("components cannot be joined")
				fmt.Fprintln(out, "no path")
				return nil
			}

			rows := make([][]string, len(res.Paths))
			for i, p := range res.Paths {
				rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(len(p)), joinNames(p)}
			}
			render(out, a.cfg.Format, []string{"path", "length", "items"}, rows)
			return nil
		},
	}
	cmd.Flags().Int("max-paths", 0, "keep at most this many tied paths (0 = all)")
	cmd.Flags().Int("max-depth", 0, "search depth limit (0 = none)")
	_ = viper.BindPFlag("max_paths", cmd.Flags().Lookup("max-paths"))
	_ = viper.BindPFlag("max_depth", cmd.Flags().Lookup("max-depth"))
	return cmd
}
