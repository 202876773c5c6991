package main

import (
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var config = viper.New()

// loadConfig binds the CLI flags and environment variables (FUNDER_*) into the config.
func loadConfig() error {
	config.SetEnvPrefix("funder")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	flag.Parse()
	return config.BindPFlags(flag.CommandLine)
}
