package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/statgroup/internal/cli"
	"github.com/JonMunkholm/statgroup/internal/config"
	"github.com/JonMunkholm/statgroup/internal/core"
	"github.com/JonMunkholm/statgroup/internal/core/profiles" // Register built-in profiles
	"github.com/JonMunkholm/statgroup/internal/logging"
	"github.com/JonMunkholm/statgroup/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(2)
	}

	opts, exit, err := cli.ParseServe(os.Args[1:], os.Stderr, cfg)
	if exit {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if cfg.Convert.ProfilesFile != "" {
		if _, err := profiles.RegisterFile(cfg.Convert.ProfilesFile); err != nil {
			slog.Error("failed to load profiles", "file", cfg.Convert.ProfilesFile, "error", err)
			os.Exit(2)
		}
	}

	profile, err := core.Resolve(cfg.Convert.Profile, opts.Input)
	if err != nil {
		slog.Error("failed to resolve profile", "error", err)
		os.Exit(2)
	}

	// Load and group the CSV once; the document is read-only afterwards
	grouped, err := core.Load(opts.Input, profile)
	if err != nil {
		slog.Error("failed to load input", "input", opts.Input, "error", err)
		fmt.Fprintln(os.Stderr, core.FormatUserError(err))
		os.Exit(1)
	}

	data, err := web.NewDataset(profile, grouped, cfg.Convert.Output, core.EncodeOptions{Indent: cfg.Convert.Indent})
	if err != nil {
		slog.Error("failed to build dataset", "error", err)
		os.Exit(1)
	}

	slog.Info("dataset loaded",
		"profile", profile.Name,
		"players", len(grouped),
		"records", grouped.Rows(),
		"document", "/"+data.Name,
	)

	server := web.NewServer(data, cfg.Server)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
