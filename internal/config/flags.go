package config

import (
	"flag"
	"io"
	"os"
)

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file")
	flagPrecision = flag.Int("precision", -1, "Decimals in printed numbers")
)

// ParseFlags parses command-line flags. Call this early in main().
// The error is flag.ErrHelp for -h/-help.
func ParseFlags() error {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses args into the command-line flags. Errors are returned
// instead of exiting, and the flag package prints nothing itself, so the
// caller decides what usage text to show.
func ParseArgs(args []string) error {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(io.Discard)
	return flag.CommandLine.Parse(args)
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// Overrides holds CLI settings that take priority over the config file.
// Zero values leave the loaded setting unchanged.
type Overrides struct {
	Debug     bool
	LogFile   string
	Precision int // negative means unset
}

// Apply applies the overrides to cfg.
func (o Overrides) Apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
	if o.Precision >= 0 {
		cfg.Output.Precision = o.Precision
	}
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	Overrides{
		Debug:     *flagDebug,
		LogFile:   *flagLogFile,
		Precision: *flagPrecision,
	}.Apply(cfg)
}
