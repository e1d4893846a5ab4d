// Package store copies grouped records into Postgres for downstream SQL use.
//
// Each export is tagged with a run ID so repeated conversions of the same
// file can be told apart. Rows are written with the COPY protocol.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JonMunkholm/statgroup/internal/core"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of a pgx connection used by the exporter.
// Satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnSrc []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// ExportResult describes a finished export.
type ExportResult struct {
	RunID    string
	Table    string
	Rows     int64
	Players  int
	Duration time.Duration
}

// Columns returns the export table's column names for a profile.
// Field columns use the profile's output names, lowercased.
func Columns(p core.Profile) []string {
	cols := []string{"run_id", "player", "seq"}
	for _, f := range p.Fields {
		cols = append(cols, columnName(f))
	}
	return cols
}

func columnName(f core.FieldSpec) string {
	return strings.ToLower(f.OutputName())
}

// CreateTableSQL returns the DDL for a profile's export table.
func CreateTableSQL(table string, p core.Profile) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(pgx.Identifier{table}.Sanitize())
	b.WriteString(" (run_id uuid NOT NULL, player text NOT NULL, seq integer NOT NULL")
	for _, f := range p.Fields {
		b.WriteString(", ")
		b.WriteString(pgx.Identifier{columnName(f)}.Sanitize())
		if f.Coerce.IsInt() {
			b.WriteString(" bigint")
		} else {
			b.WriteString(" double precision")
		}
	}
	b.WriteString(", PRIMARY KEY (run_id, player, seq))")
	return b.String()
}

// BuildRows flattens a grouped document into COPY rows.
// Players are visited in sorted order; seq is the record's position within
// its player's sequence, starting at 1.
func BuildRows(runID uuid.UUID, g core.Grouped) [][]any {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	id := pgtype.UUID{Bytes: runID, Valid: true}

	rows := make([][]any, 0, g.Rows())
	for _, key := range keys {
		for i, rec := range g[key] {
			row := make([]any, 0, len(rec.Values)+3)
			row = append(row, id, key, int32(i+1))
			row = append(row, rec.Values...)
			rows = append(rows, row)
		}
	}
	return rows
}

// Export creates the table if needed and copies every record into it.
func Export(ctx context.Context, db DBTX, table string, p core.Profile, g core.Grouped) (ExportResult, error) {
	start := time.Now()
	runID := uuid.New()

	if _, err := db.Exec(ctx, CreateTableSQL(table, p)); err != nil {
		return ExportResult{}, fmt.Errorf("export failed: create table %s: %w", table, err)
	}

	rows := BuildRows(runID, g)
	n, err := db.CopyFrom(ctx, pgx.Identifier{table}, Columns(p), pgx.CopyFromRows(rows))
	if err != nil {
		return ExportResult{}, fmt.Errorf("export failed: copy into %s: %w", table, err)
	}

	return ExportResult{
		RunID:    runID.String(),
		Table:    table,
		Rows:     n,
		Players:  len(g),
		Duration: time.Since(start),
	}, nil
}
