package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = ".mdrender"
	envPrefix  = "mdrender"
	flagConfig = "config"
)

// skipConfig lists flags that are never taken from the config file or the
// environment. The config path itself is resolved before the file is read.
var skipConfig = map[string]bool{flagConfig: true, "help": true}

// loadConfig layers the config file and MDRENDER_* environment variables under
// the command line flags. A flag set explicitly always wins.
func loadConfig(cmd *cobra.Command, opts *options) error {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if !cmd.Flags().Changed(flagConfig) {
		opts.config = v.GetString(flagConfig)
	}

	if len(opts.config) != 0 {
		v.SetConfigFile(opts.config)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	var err error

	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if err != nil || flag.Changed || skipConfig[flag.Name] || !v.IsSet(flag.Name) {
			return
		}

		err = cmd.Flags().Set(flag.Name, v.GetString(flag.Name))
	})

	return err
}
