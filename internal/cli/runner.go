package cli

import (
	"context"
	"fmt"
	"io"

	"envcheck/internal/audit"
	"envcheck/internal/config"
	"envcheck/internal/parser"
	"envcheck/internal/watch"

	"github.com/rs/zerolog"
)

// Run executes the main logic and returns the exit code
func Run(args []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), args, stdout, stderr)
}

// RunContext is Run with a context that stops watch mode when cancelled
func RunContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	if cfg.Help {
		PrintUsage(stdout)
		return 0
	}
	if cfg.Version {
		fmt.Fprintln(stdout, "envcheck", Version)
		return 0
	}

	configPath, fileCfg, err := loadFileConfig(cfg.ConfigPath)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	cfg.MergeWithFileConfig(fileCfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	logger := newLogger(stderr, cfg.Verbose)
	ctx = logger.WithContext(ctx)
	if configPath != "" {
		logger.Debug().Str("path", configPath).Msg("loaded config file")
	}

	code, err := check(ctx, cfg, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	if !cfg.Watch {
		return code
	}

	paths := []string{cfg.EnvPath}
	if cfg.Example != "" {
		paths = append(paths, cfg.Example)
	}
	err = watch.Files(ctx, paths, func() {
		c, err := check(ctx, cfg, stdout)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			code = 2
			return
		}
		code = c
	})
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	return code
}

// check parses the env file and the optional example, prints the report and
// returns the exit code for it. Nothing is printed if either file fails.
func check(ctx context.Context, cfg *Config, stdout io.Writer) (int, error) {
	log := zerolog.Ctx(ctx)

	parsed, err := parser.ParseFile(cfg.EnvPath)
	if err != nil {
		return 2, err
	}
	log.Debug().
		Str("file", cfg.EnvPath).
		Int("keys", len(parsed.Values)).
		Int("duplicates", len(parsed.Duplicates)).
		Msg("parsed environment file")

	var required []string
	if cfg.Example != "" {
		required, err = parser.ParseRequiredKeysFile(cfg.Example)
		if err != nil {
			return 2, err
		}
		log.Debug().Str("file", cfg.Example).Int("required", len(required)).Msg("parsed example file")
	}

	report := audit.Validate(parsed, required)
	fmt.Fprint(stdout, FormatReport(parser.Presence(parsed.Values, required), report))

	code := exitCode(report, cfg.StrictEmpty)
	log.Debug().
		Int("missing", len(report.Missing)).
		Int("empty", len(report.Empty)).
		Int("duplicates", len(report.Duplicates)).
		Int("exit_code", code).
		Msg("validation finished")
	return code, nil
}

// exitCode is 1 only when strict-empty is set and some value is empty.
// Missing and duplicated keys are reported but never fail the run.
func exitCode(report *audit.Report, strictEmpty bool) int {
	if strictEmpty && len(report.Empty) > 0 {
		return 1
	}
	return 0
}

// loadFileConfig loads the explicit config file, or the one found in the
// working directory. No config file is not an error.
func loadFileConfig(path string) (string, *config.FileConfig, error) {
	if path == "" {
		path = config.FindConfigFile()
		if path == "" {
			return "", nil, nil
		}
	}
	fc, err := config.LoadFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, fc, nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
