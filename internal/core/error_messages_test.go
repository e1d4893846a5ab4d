package core

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "missing columns",
			err:         &FormatError{Missing: []string{"age"}},
			wantCode:    "FMT001",
			wantMessage: "Required column is missing from the CSV header",
		},
		{
			name:     "malformed csv",
			err:      &FormatError{Err: errors.New("invalid csv: wrong number of fields")},
			wantCode: "FMT002",
		},
		{
			name:     "empty file",
			err:      &FormatError{Err: errEmptyFile},
			wantCode: "FMT003",
		},
		{
			name:     "unreadable input",
			err:      &FormatError{Path: "x.csv", Err: fmt.Errorf("open x.csv: %w", os.ErrNotExist)},
			wantCode: "FMT004",
		},
		{
			name:     "invalid encoding",
			err:      &FormatError{Err: fmt.Errorf("line 2, column %q: %w", "name", errInvalidUTF8)},
			wantCode: "FMT006",
		},
		{
			name:        "empty required field",
			err:         &ParseError{Line: 3, Column: "age", Err: errEmptyRequired},
			wantCode:    "PRS001",
			wantMessage: "Required field is empty",
		},
		{
			name:     "invalid integer",
			err:      &ParseError{Column: "age", Value: "x", Err: errInvalidInt},
			wantCode: "PRS002",
		},
		{
			name:     "invalid number",
			err:      &ParseError{Column: "MAWS", Value: "x", Err: errInvalidFloat},
			wantCode: "PRS003",
		},
		{
			name:     "wrapped parse error",
			err:      fmt.Errorf("load: %w", &ParseError{Err: errInvalidFloat}),
			wantCode: "PRS003",
		},
		{
			name:     "output create",
			err:      &IOError{Op: "create", Path: "/nope/boog.json", Err: os.ErrPermission},
			wantCode: "IO001",
		},
		{
			name:     "output rename",
			err:      &IOError{Op: "rename", Path: "boog.json", Err: errors.New("cross-device link")},
			wantCode: "IO002",
		},
		{
			name:     "unknown profile",
			err:      errors.New(`unknown profile "bogus" (known: [boog maws])`),
			wantCode: "CFG001",
		},
		{
			name:     "invalid profile",
			err:      errors.New(`invalid profile "x": key column is required`),
			wantCode: "CFG002",
		},
		{
			name:     "connection refused",
			err:      errors.New("export failed: dial tcp 127.0.0.1:5432: connect: connection refused"),
			wantCode: "DB001",
		},
		{
			name:     "export failed generic",
			err:      errors.New("export failed: copy: something broke"),
			wantCode: "DB004",
		},
		{
			name:     "unknown player",
			err:      errors.New("player not found: Nobody"),
			wantCode: "WEB001",
		},
		{
			name:        "unknown error falls back",
			err:         errors.New("something strange"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if tt.wantMessage != "" && got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	got := FormatUserError(&ParseError{Err: errEmptyRequired})
	if !strings.HasPrefix(got, "Required field is empty (Code: PRS001). ") {
		t.Errorf("FormatUserError() = %q", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	if IsUserFacing(nil) {
		t.Error("IsUserFacing(nil) = true")
	}
	if !IsUserFacing(&FormatError{Missing: []string{"name"}}) {
		t.Error("IsUserFacing(FormatError) = false")
	}
	if IsUserFacing(errors.New("boom")) {
		t.Error("IsUserFacing(unknown) = true")
	}
}

func TestErrorStrings(t *testing.T) {
	pe := &ParseError{Line: 3, Column: "age", Value: "", Coerce: RequiredInt, Err: errEmptyRequired}
	if want := `parse error at line 3, column "age" (required-int): required field is empty: ""`; pe.Error() != want {
		t.Errorf("ParseError.Error() = %q, want %q", pe.Error(), want)
	}

	fe := &FormatError{Path: "in.csv", Missing: []string{"MAWS", "Age"}, Err: errors.New("missing required column")}
	if want := "format error in in.csv: missing required columns: MAWS, Age: missing required column"; fe.Error() != want {
		t.Errorf("FormatError.Error() = %q, want %q", fe.Error(), want)
	}
}
