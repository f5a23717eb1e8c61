package config

import "flag"

// CliArgs holds the parsed command-line arguments. It is nil until
// ParseArgs runs.
var CliArgs *CliConfig

// CliConfig is the set of supported command-line arguments.
type CliConfig struct {
	ConfigFile string
	Debug      bool
	Version    bool
}

// ParseArgs parses the command line into CliArgs. It may be called once.
func ParseArgs() {
	if CliArgs != nil {
		panic("already defined")
	}
	CliArgs = &CliConfig{}
	flag.StringVar(&CliArgs.ConfigFile, "config", "", "Path to the config file")
	flag.BoolVar(&CliArgs.Debug, "d", false, "Enable debug mode")
	flag.BoolVar(&CliArgs.Debug, "debug", false, "Enable debug mode")
	flag.BoolVar(&CliArgs.Version, "v", false, "Print version and exit")
	flag.Parse()
}
