package core

// errors.go defines the error kinds a conversion can fail with.
//
//   - FormatError: the input cannot be read as the profile expects
//     (unreadable file, malformed CSV, missing columns)
//   - ParseError: a cell cannot be coerced to its field's numeric type
//   - IOError: the output cannot be written
//
// All three are fatal. Callers match them with errors.As.

import (
	"fmt"
	"strings"
)

// FormatError reports input that cannot be read as the profile expects.
type FormatError struct {
	Path    string   // Input path, if known
	Missing []string // Missing required columns
	Err     error    // Underlying read error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("format error")
	if e.Path != "" {
		b.WriteString(" in ")
		b.WriteString(e.Path)
	}
	if len(e.Missing) > 0 {
		b.WriteString(": missing required columns: ")
		b.WriteString(strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseError reports a cell that cannot be coerced.
type ParseError struct {
	Line   int      // 1-based line number in the source file
	Column string   // Column header name
	Value  string   // The raw cell value
	Coerce Coercion // The coercion that failed
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %q (%s): %v: %q",
		e.Line, e.Column, e.Coerce, e.Err, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports an output that cannot be written.
type IOError struct {
	Path string
	Op   string // "create", "write", "rename"
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("output error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
