package core

import (
	"context"
	"log/slog"
	"time"
)

// ConvertOptions configures a single CSV to JSON conversion.
type ConvertOptions struct {
	Input  string // Input CSV path
	Output string // Output JSON path (defaults to the profile's Output)
	Encode EncodeOptions
}

// Load reads and groups a CSV file without writing anything.
func Load(path string, p Profile) (Grouped, error) {
	rows, err := ReadFile(path, p)
	if err != nil {
		return nil, err
	}
	return Group(rows, p)
}

// Convert reads the input CSV, groups it with the profile and writes the
// JSON document. The output file is only opened after grouping succeeds.
func Convert(ctx context.Context, logger *slog.Logger, p Profile, opts ConvertOptions) (Grouped, Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	output := opts.Output
	if output == "" {
		output = p.Output
	}

	logger.Info("conversion started", "profile", p.Name, "input", opts.Input, "output", output)

	grouped, err := Load(opts.Input, p)
	if err != nil {
		return nil, Summary{}, err
	}

	if err := ctx.Err(); err != nil {
		return nil, Summary{}, err
	}

	if err := WriteFile(output, grouped, opts.Encode); err != nil {
		return nil, Summary{}, err
	}

	summary := Summary{
		Profile: p.Name,
		Rows:    grouped.Rows(),
		Players: len(grouped),
		Output:  output,
	}

	logger.Info("conversion completed",
		"rows", summary.Rows,
		"players", summary.Players,
		"output", summary.Output,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return grouped, summary, nil
}
