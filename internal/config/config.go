// Package config loads ufpath settings from viper.
package config

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Output formats accepted by Config.Format.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Config holds all runtime configuration for one ufpath invocation.
// Values are populated from .ufpath.yaml, UFPATH_* env vars, and CLI flags.
type Config struct {
	Verbose       bool   `mapstructure:"verbose"`
	Format        string `mapstructure:"format"`
	MaxPaths      int    `mapstructure:"max_paths"`
	MaxDepth      int    `mapstructure:"max_depth"`
	LandThreshold int    `mapstructure:"land_threshold"`
	Connectivity  int    `mapstructure:"connectivity"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("verbose", false)
	viper.SetDefault("format", FormatTable)
	viper.SetDefault("max_paths", 0)
	viper.SetDefault("max_depth", 0)
	viper.SetDefault("land_threshold", 1)
	viper.SetDefault("connectivity", 4)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Format != FormatTable && c.Format != FormatPlain {
		result = multierror.Append(result, errors.Errorf("format must be %q or %q, got %q", FormatTable, FormatPlain, c.Format))
	}
	if c.MaxPaths < 0 {
		result = multierror.Append(result, errors.Errorf("max_paths cannot be negative (%d)", c.MaxPaths))
	}
	if c.MaxDepth < 0 {
		result = multierror.Append(result, errors.Errorf("max_depth cannot be negative (%d)", c.MaxDepth))
	}
	if c.Connectivity != 4 && c.Connectivity != 8 {
		result = multierror.Append(result, errors.Errorf("connectivity must be 4 or 8, got %d", c.Connectivity))
	}
	return result.ErrorOrNil()
}
