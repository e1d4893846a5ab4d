package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/JonMunkholm/statgroup/internal/cli"
	"github.com/JonMunkholm/statgroup/internal/config"
	"github.com/JonMunkholm/statgroup/internal/core"
	"github.com/JonMunkholm/statgroup/internal/core/profiles" // Register built-in profiles
	"github.com/JonMunkholm/statgroup/internal/logging"
	"github.com/JonMunkholm/statgroup/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	_ = godotenv.Overload()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the converter and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	opts, exit, err := cli.Parse(args, stderr, cfg)
	if exit {
		return 0
	}
	if err != nil {
		return report(stderr, err)
	}

	logging.SetupWriter(stderr, cfg.Logging.Level, cfg.Logging.Format)

	if cfg.Convert.ProfilesFile != "" {
		names, err := profiles.RegisterFile(cfg.Convert.ProfilesFile)
		if err != nil {
			return report(stderr, &cli.ExitError{Code: 2, Message: err.Error()})
		}
		slog.Debug("profiles loaded", "file", cfg.Convert.ProfilesFile, "profiles", names)
	}

	if opts.ListProfiles {
		listProfiles(stdout)
		return 0
	}

	profile, err := core.Resolve(cfg.Convert.Profile, opts.Input)
	if err != nil {
		if cfg.Convert.Profile == core.AutoProfile {
			return report(stderr, err)
		}
		return report(stderr, &cli.ExitError{Code: 2, Message: err.Error()})
	}
	if cfg.Convert.Profile == core.AutoProfile {
		slog.Info("profile detected", "profile", profile.Name)
	}

	grouped, summary, err := core.Convert(ctx, slog.Default(), profile, core.ConvertOptions{
		Input:  opts.Input,
		Output: cfg.Convert.Output,
		Encode: core.EncodeOptions{Indent: cfg.Convert.Indent},
	})
	if err != nil {
		return report(stderr, err)
	}

	fmt.Fprintf(stdout, "wrote %d records for %d players to %s\n", summary.Rows, summary.Players, summary.Output)

	if cfg.Database.ExportEnabled() {
		if err := export(ctx, cfg, profile, grouped); err != nil {
			return report(stderr, err)
		}
	}

	return 0
}

// export copies the grouped records into Postgres.
func export(ctx context.Context, cfg *config.Config, profile core.Profile, grouped core.Grouped) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Database.Timeout)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("export failed: parse database URL: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("export failed: connect: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("export failed: ping: %w", err)
	}

	res, err := store.Export(ctx, pool, cfg.Database.Table, profile, grouped)
	if err != nil {
		return err
	}

	logger := logging.WithFields(ctx, "run_id", res.RunID, "table", res.Table)
	logger.Info("export completed",
		"rows", res.Rows,
		"players", res.Players,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return nil
}

// listProfiles prints the registered profiles as a table.
func listProfiles(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKEY\tSHAPE\tOUTPUT\tDESCRIPTION")
	for _, p := range core.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Name, p.KeyColumn, p.Shape, p.Output, p.Description)
	}
	tw.Flush()
}

// report logs err, prints the user-facing line and returns the exit code.
func report(stderr io.Writer, err error) int {
	var ee *cli.ExitError
	if errors.As(err, &ee) {
		fmt.Fprintln(stderr, "error:", ee.Message)
		if msg := core.MapError(err); msg.Code != "ERR000" {
			fmt.Fprintln(stderr, core.FormatUserError(err))
		}
		return ee.Code
	}

	slog.Error("conversion failed", "error", err)
	fmt.Fprintln(stderr, core.FormatUserError(err))
	return 1
}
