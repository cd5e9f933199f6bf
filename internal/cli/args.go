package cli

import (
	"errors"
	"fmt"
	"io"

	"envcheck/internal/config"

	"github.com/spf13/pflag"
)

// Config holds parsed CLI arguments
type Config struct {
	EnvPath     string // positional path to the .env file
	Example     string // --example file whose keys are required
	StrictEmpty bool   // --strict-empty exit 1 on empty values
	ConfigPath  string // --config explicit YAML config file
	Watch       bool   // --watch re-run on file changes
	Verbose     bool   // --verbose/-v debug logging
	Help        bool   // --help/-h show usage
	Version     bool   // --version print version

	changed map[string]bool
}

// ParseArgs parses command line arguments into Config. The env file path is
// not required here so that --help and --version work on their own.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := newFlagSet(cfg, io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		cfg.EnvPath = rest[0]
	default:
		return nil, fmt.Errorf("unexpected argument: %s", rest[1])
	}

	cfg.changed = make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) {
		cfg.changed[f.Name] = true
	})

	return cfg, nil
}

// MergeWithFileConfig fills every setting not given on the command line
// from the config file.
func (c *Config) MergeWithFileConfig(fc *config.FileConfig) {
	if fc == nil {
		return
	}
	if !c.changed["example"] && c.Example == "" {
		c.Example = fc.Example
	}
	if !c.changed["strict-empty"] {
		c.StrictEmpty = c.StrictEmpty || fc.StrictEmpty
	}
	if !c.changed["watch"] {
		c.Watch = c.Watch || fc.Watch
	}
	if !c.changed["verbose"] {
		c.Verbose = c.Verbose || fc.Verbose
	}
}

// Validate checks settings that depend on each other
func (c *Config) Validate() error {
	if c.EnvPath == "" {
		return errors.New("missing required argument: <env-file>")
	}
	return nil
}

func newFlagSet(cfg *Config, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("envcheck", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false

	fs.StringVar(&cfg.Example, "example", "", "File whose keys are treated as required")
	fs.BoolVar(&cfg.StrictEmpty, "strict-empty", false, "Exit with code 1 when any key has an empty value")
	fs.StringVar(&cfg.ConfigPath, "config", "", "Path to a YAML config file (default .envcheck.yaml)")
	fs.BoolVar(&cfg.Watch, "watch", false, "Re-run the check whenever the checked files change")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Debug logging to stderr")
	fs.BoolVarP(&cfg.Help, "help", "h", false, "Show this help message")
	fs.BoolVar(&cfg.Version, "version", false, "Print version and exit")

	return fs
}
