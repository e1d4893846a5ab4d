// Package core provides the business logic for grouping stat CSV exports.
//
// This package contains all domain logic independent of any CLI, HTTP or
// database layer. It can be used by the command-line converter, the viewer
// server, or tests without modification.
//
// # Profiles
//
// A [Profile] is a field-extraction policy: the column that keys a group,
// and an ordered list of [FieldSpec] saying which columns become record
// values and how each is coerced. Profiles are registered at init time
// using [Register], or loaded from YAML at runtime:
//
//	core.Register(core.Profile{
//	    Name:      "maws",
//	    KeyColumn: "Player",
//	    Shape:     core.ShapeObject,
//	    Fields: []core.FieldSpec{
//	        {Column: "Season", Coerce: core.RequiredInt},
//	        {Column: "MAWS", Coerce: core.RequiredFloat},
//	    },
//	    Output: "maws.json",
//	})
//
// [Resolve] with [AutoProfile] picks a profile from the input header instead.
//
// # Conversion
//
// The flow is a single pass:
//
//  1. [ReadRows] strips a BOM, validates the header and yields [Row] values
//  2. [Group] coerces each row and appends it to its key's sequence
//  3. [WriteFile] encodes the [Grouped] document and renames it into place
//
// # Error Handling
//
// Failures are [FormatError], [ParseError] or [IOError], all fatal.
// [MapError] maps any error to a user-facing message with a code:
//
//   - FMT001-FMT006: Input format errors (missing columns, malformed CSV)
//   - PRS001-PRS003: Cell coercion errors
//   - IO001-IO002: Output errors
//   - CFG001-CFG002: Profile and configuration errors
//   - DB001-DB004: Export errors
//   - WEB001: Viewer lookups (unknown player or field)
package core
