package core

// error_messages.go maps errors to user-facing messages with codes for
// support reference. Typed errors are matched first with errors.As; other
// errors fall back to case-insensitive substring patterns.
//
// # Format Errors (FMT001-FMT099)
//
//	FMT001 - Missing column: Required column is missing from the CSV header
//	         Action: Check the header matches the profile's columns exactly (case-sensitive)
//	FMT002 - Invalid CSV: File is not a valid CSV
//	         Action: Ensure file is comma-separated with consistent columns
//	FMT003 - Empty file: The file has no header row
//	FMT004 - Unreadable input: The input file could not be opened
//	FMT005 - Unknown layout: No single profile matches the header (--profile auto)
//	FMT006 - Invalid encoding: A cell is not valid UTF-8
//
// # Parse Errors (PRS001-PRS099)
//
//	PRS001 - Required field is empty
//	PRS002 - Invalid integer
//	PRS003 - Invalid number
//
// # Output Errors (IO001-IO099)
//
//	IO001 - Output could not be created
//	IO002 - Output could not be written
//
// # Configuration Errors (CFG001-CFG099)
//
//	CFG001 - Unknown profile
//	CFG002 - Invalid profile or configuration
//
// # Export Errors (DB001-DB099)
//
//	DB001 - Connection refused
//	DB002 - Timeout
//	DB003 - Permission denied on the export table
//	DB004 - Export failed
//
// # Viewer Errors (WEB001-WEB099)
//
//	WEB001 - Not found: Unknown player or field
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches. Check the log for the
// original technical error.

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgMissingColumn = UserMessage{
		Message: "Required column is missing from the CSV header",
		Action:  "Check the header matches the profile's columns exactly (case-sensitive)",
		Code:    "FMT001",
	}
	msgInvalidCSV = UserMessage{
		Message: "File is not a valid CSV",
		Action:  "Ensure file is comma-separated with a consistent number of columns",
		Code:    "FMT002",
	}
	msgEmptyFile = UserMessage{
		Message: "The file has no header row",
		Action:  "Provide a CSV file with a header and data rows",
		Code:    "FMT003",
	}
	msgUnreadable = UserMessage{
		Message: "The input file could not be opened",
		Action:  "Check the path and file permissions",
		Code:    "FMT004",
	}
	msgUndetermined = UserMessage{
		Message: "Could not determine the profile from the CSV header",
		Action:  "Pass --profile explicitly; see --list-profiles",
		Code:    "FMT005",
	}
	msgInvalidEncoding = UserMessage{
		Message: "The file is not valid UTF-8 text",
		Action:  "Re-export the CSV with UTF-8 encoding",
		Code:    "FMT006",
	}
	msgEmptyRequired = UserMessage{
		Message: "Required field is empty",
		Action:  "Fill in the value or use a profile where the field is optional",
		Code:    "PRS001",
	}
	msgInvalidInt = UserMessage{
		Message: "Invalid integer",
		Action:  "Use a whole number without decimals or separators",
		Code:    "PRS002",
	}
	msgInvalidNumber = UserMessage{
		Message: "Invalid number",
		Action:  "Use a plain decimal number such as 12.5",
		Code:    "PRS003",
	}
	msgOutputCreate = UserMessage{
		Message: "Output file could not be created",
		Action:  "Check the output directory exists and is writable",
		Code:    "IO001",
	}
	msgOutputWrite = UserMessage{
		Message: "Output file could not be written",
		Action:  "Check free disk space and permissions",
		Code:    "IO002",
	}
)

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins, so more specific patterns come first.
var errorPatterns = []errorPattern{
	{
		pattern: "unknown profile",
		msg: UserMessage{
			Message: "Unknown profile",
			Action:  "Run with --list-profiles to see the available profiles",
			Code:    "CFG001",
		},
	},
	{
		pattern: "invalid profile",
		msg: UserMessage{
			Message: "Profile definition is invalid",
			Action:  "Fix the profile file and try again",
			Code:    "CFG002",
		},
	},
	{
		pattern: "profile already registered",
		msg: UserMessage{
			Message: "Profile definition is invalid",
			Action:  "Choose a profile name that is not already in use",
			Code:    "CFG002",
		},
	},
	{
		pattern: "config validation",
		msg: UserMessage{
			Message: "Configuration is invalid",
			Action:  "Check the environment variables and flags",
			Code:    "CFG002",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Check the database URL and that the server is running",
			Code:    "DB001",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Try again later",
			Code:    "DB002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Try again later",
			Code:    "DB002",
		},
	},
	{
		pattern: "permission denied for",
		msg: UserMessage{
			Message: "Database permission denied",
			Action:  "Grant the user CREATE and INSERT on the export table",
			Code:    "DB003",
		},
	},
	{
		pattern: "export failed",
		msg: UserMessage{
			Message: "Export to database failed",
			Action:  "Check the log for details; the JSON output was still written",
			Code:    "DB004",
		},
	},
	{
		pattern: "not found",
		msg: UserMessage{
			Message: "Not found",
			Action:  "Check the player name and field against /api/players",
			Code:    "WEB001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
//
// Example:
//
//	_, err := core.Load("stats.csv", profile)
//	msg := core.MapError(err)
//	// msg.Code == "PRS003" for a non-numeric metric cell
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var fe *FormatError
	if errors.As(err, &fe) {
		switch {
		case len(fe.Missing) > 0:
			return msgMissingColumn
		case errors.Is(fe.Err, errEmptyFile):
			return msgEmptyFile
		case errors.Is(fe.Err, errProfileUndetermined):
			return msgUndetermined
		case errors.Is(fe.Err, errInvalidUTF8):
			return msgInvalidEncoding
		case errors.Is(fe.Err, os.ErrNotExist), errors.Is(fe.Err, os.ErrPermission):
			return msgUnreadable
		default:
			return msgInvalidCSV
		}
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		switch {
		case errors.Is(pe.Err, errEmptyRequired):
			return msgEmptyRequired
		case errors.Is(pe.Err, errInvalidInt):
			return msgInvalidInt
		default:
			return msgInvalidNumber
		}
	}

	var ioe *IOError
	if errors.As(err, &ioe) {
		if ioe.Op == "create" {
			return msgOutputCreate
		}
		return msgOutputWrite
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
