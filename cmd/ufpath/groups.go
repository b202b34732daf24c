package main

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/unionpath/internal/graphfile"
)

var exampleForGroupsCmd = `ufpath groups universe.toml
  ufpath groups --connected universe.yaml`

func newGroupsCmd(a *app) *cobra.Command {
	var connected bool
	cmd := &cobra.Command{
		Use:     "groups FILE",
		Short:   "list the components of a universe",
		Example: exampleForGroupsCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}
			u, err := f.Build()
			if err != nil {
				return err
			}

			groups := u.Set.Groups()
			if connected {
				groups = u.Set.ConnectedGroups()
			}
			logrus.WithField("items", u.Set.Size()).Debugf("%d components", len(groups))

			rows := make([][]string, len(groups))
			for i, g := range groups {
				rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(len(g)), joinNames(g)}
			}
			render(cmd.OutOrStdout(), a.cfg.Format, []string{"group", "size", "items"}, rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&connected, "connected", false, "only list components with two or more items")
	return cmd
}
