package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"
)

var (
	errEmptyFile   = errors.New("empty file: no header row")
	errInvalidUTF8 = errors.New("invalid UTF-8")
)

// ReadRows parses CSV from r and returns one Row per data record.
//
// The header row is validated against the profile; only the columns the
// profile reads are kept in each Row. Rows carry their source line number
// so parse errors can point at the offending line. A kept cell that is not
// valid UTF-8 is a FormatError: JSON output would fold it into U+FFFD and
// distinct keys could collide.
func ReadRows(r io.Reader, p Profile) ([]Row, error) {
	reader, counter := WrapForReading(r)

	cr := csv.NewReader(reader)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &FormatError{Err: errEmptyFile}
	}
	if err != nil {
		return nil, &FormatError{Err: fmt.Errorf("invalid csv: %w", err)}
	}

	idx, err := ValidateHeaders(header, p)
	if err != nil {
		return nil, err
	}

	cols := p.Columns()
	var rows []Row

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FormatError{Err: fmt.Errorf("invalid csv: %w", err)}
		}

		line, _ := cr.FieldPos(0)
		values := make(map[string]string, len(cols))
		for _, col := range cols {
			v := record[idx[col]]
			if !utf8.ValidString(v) {
				return nil, &FormatError{Err: fmt.Errorf("line %d, column %q: %w", line, col, errInvalidUTF8)}
			}
			values[col] = v
		}
		rows = append(rows, Row{Line: line, Values: values})
	}

	slog.Debug("csv read",
		"profile", p.Name,
		"rows", len(rows),
		"bytes", counter.BytesRead,
	)

	return rows, nil
}

// ReadFile opens path and parses it with ReadRows.
// Any failure is reported as a FormatError carrying the path.
func ReadFile(path string, p Profile) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	defer f.Close()

	rows, err := ReadRows(f, p)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) && fe.Path == "" {
			fe.Path = path
		}
		return nil, err
	}
	return rows, nil
}
