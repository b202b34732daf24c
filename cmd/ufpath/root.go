package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/unionpath/internal/config"
	"github.com/katalvlaran/unionpath/internal/logger"
)

// app carries the loaded configuration to the subcommands.
type app struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "ufpath",
		Short:         "Union-find components and bridging paths",
		Long:          "ufpath reads a universe of named items (or a grid) from TOML or YAML, lists its components and finds chains of unclaimed items that join two of them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .ufpath.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("format", config.FormatTable, "output format: table or plain")
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))

	rootCmd.AddCommand(newGroupsCmd(a), newPathCmd(a), newGridCmd(a))
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".ufpath")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	viper.SetEnvPrefix("UFPATH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	a.cfg = cfg
	logger.Init(logger.LogOptions{Verbose: cfg.Verbose, Output: cmd.ErrOrStderr()})
	logrus.WithField("config", viper.ConfigFileUsed()).Debug("configuration loaded")
	return nil
}
