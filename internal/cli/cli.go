// Package cli parses the command lines of the statgroup binaries.
//
// Flags are layered over the environment configuration: a flag that is not
// given keeps the value loaded by internal/config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/JonMunkholm/statgroup/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Usage returns an ExitError with the usage exit code.
func Usage(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Options is the parsed command line of the converter.
type Options struct {
	Input        string
	ListProfiles bool
	Config       *config.Config
}

// ServeOptions is the parsed command line of the viewer server.
type ServeOptions struct {
	Input  string
	Config *config.Config
}

// commonFlags binds the flags shared by both binaries onto cfg.
func commonFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Convert.Profile, "profile", cfg.Convert.Profile, "Field-extraction profile name.")
	fs.StringVar(&cfg.Convert.ProfilesFile, "profiles-file", cfg.Convert.ProfilesFile, "YAML file with additional profiles.")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Log output format. Options: 'text' or 'json'.")
}

// Parse processes the converter's arguments. It returns the options, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, cfg *config.Config) (*Options, bool, error) {
	slog.Debug("cli parser started")
	fs := flag.NewFlagSet("statgroup", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprint(output, `
statgroup - Group per-season player statistics from CSV into JSON.

Usage:
  statgroup [options] INPUT_CSV

Arguments:
  INPUT_CSV
    CSV file with a header row matching the profile's columns.

Options:
`)
		fs.PrintDefaults()
	}

	commonFlags(fs, cfg)
	fs.StringVar(&cfg.Convert.Output, "output", cfg.Convert.Output, "Output JSON path (default: the profile's output).")
	fs.BoolVar(&cfg.Convert.Indent, "indent", cfg.Convert.Indent, "Pretty-print the JSON output.")
	fs.StringVar(&cfg.Database.URL, "database-url", cfg.Database.URL, "Also copy records into this Postgres database.")
	fs.StringVar(&cfg.Database.Table, "table", cfg.Database.Table, "Export table name.")
	list := fs.Bool("list-profiles", false, "Print the registered profiles and exit.")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &Options{ListProfiles: *list, Config: cfg}

	if !opts.ListProfiles {
		switch len(positional) {
		case 0:
			fs.Usage()
			return nil, false, Usage("missing INPUT_CSV argument")
		case 1:
			opts.Input = positional[0]
		default:
			return nil, false, Usage("expected one INPUT_CSV argument, got %d", len(positional))
		}
	}

	if err := validate(cfg); err != nil {
		return nil, false, err
	}

	slog.Debug("cli parser finished", "input", opts.Input, "config", cfg.String())
	return opts, false, nil
}

// ParseServe processes the viewer server's arguments.
func ParseServe(args []string, output io.Writer, cfg *config.Config) (*ServeOptions, bool, error) {
	fs := flag.NewFlagSet("statgroup-server", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprint(output, `
statgroup-server - Serve grouped player statistics over HTTP.

Usage:
  statgroup-server [options] INPUT_CSV

Options:
`)
		fs.PrintDefaults()
	}

	commonFlags(fs, cfg)
	fs.StringVar(&cfg.Server.Host, "host", cfg.Server.Host, "Interface to listen on.")
	fs.IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "Port to listen on.")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if len(positional) != 1 {
		fs.Usage()
		return nil, false, Usage("expected one INPUT_CSV argument, got %d", len(positional))
	}

	if err := validate(cfg); err != nil {
		return nil, false, err
	}

	return &ServeOptions{Input: positional[0], Config: cfg}, false, nil
}

// parseInterspersed parses args with fs, allowing flags after positional
// arguments. The flag package stops at the first non-flag, so parsing
// resumes after each positional. Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if consumed := args[:len(args)-len(rest)]; len(consumed) > 0 && consumed[len(consumed)-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// validate re-runs configuration validation after flags were applied.
func validate(cfg *config.Config) error {
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)

	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	return nil
}
