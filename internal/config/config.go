// Package config resolves the tree's (dims, min, max) parameters from
// flags, environment variables, and an optional config file, in that
// precedence order, grounded on the spf13/viper usage seen across the
// retrieval pack (e.g. rafaelmgr12-litegodb, tuannm99-novasql,
// zhukovaskychina-xmongodb).
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultDims = 2
	DefaultMin  = 2
	DefaultMax  = 4

	envPrefix = "RTREED"
)

// Tree holds the resolved R-tree construction parameters.
type Tree struct {
	Dims int
	Min  int
	Max  int
}

// Resolve binds flags (already registered on fs by the caller) against
// viper with environment and config-file overrides, and returns the
// resolved parameters. configFile may be empty to skip file lookup.
func Resolve(fs *pflag.FlagSet, configFile string) (Tree, error) {
	v := viper.New()
	v.SetDefault("dims", DefaultDims)
	v.SetDefault("min", DefaultMin)
	v.SetDefault("max", DefaultMax)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Tree{}, fmt.Errorf("config: binding flags: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Tree{}, fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}

	return Tree{
		Dims: v.GetInt("dims"),
		Min:  v.GetInt("min"),
		Max:  v.GetInt("max"),
	}, nil
}

// RegisterFlags adds the --dims/--min/--max flags to fs, grounded on
// the spf13/pflag convention shared by the same pack repos.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("dims", DefaultDims, "number of dimensions per tuple")
	fs.Int("min", DefaultMin, "minimum entries per non-root node")
	fs.Int("max", DefaultMax, "maximum entries per node")
}
