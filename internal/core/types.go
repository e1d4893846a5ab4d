// Package core provides the business logic for grouping stat CSV exports.
// This package has no UI dependencies and can be used by any frontend.
package core

import (
	"fmt"
	"strings"
)

// Coercion is the conversion applied to a raw CSV cell.
type Coercion string

const (
	RequiredInt   Coercion = "required-int"
	RequiredFloat Coercion = "required-float"
	OptionalFloat Coercion = "optional-float"
	OptionalInt   Coercion = "optional-int"
)

// Valid reports whether c is a known coercion.
func (c Coercion) Valid() bool {
	switch c {
	case RequiredInt, RequiredFloat, OptionalFloat, OptionalInt:
		return true
	}
	return false
}

// Optional reports whether an empty cell yields an absent value instead of an error.
func (c Coercion) Optional() bool {
	return c == OptionalFloat || c == OptionalInt
}

// IsInt reports whether the coercion produces an integer.
func (c Coercion) IsInt() bool {
	return c == RequiredInt || c == OptionalInt
}

// Shape controls how a Record is serialized.
type Shape string

const (
	// ShapeTuple writes each record as a positional JSON array.
	ShapeTuple Shape = "tuple"
	// ShapeObject writes each record as a JSON object keyed by field name.
	ShapeObject Shape = "object"
)

// FieldSpec defines how a single CSV column becomes a record value.
type FieldSpec struct {
	Column string   // Column header name (must match CSV exactly)
	Name   string   // Output name for object shape (defaults to Column)
	Coerce Coercion // Conversion applied to the raw cell
}

// OutputName returns the name used for the field in object output.
func (f FieldSpec) OutputName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.Column
}

// Profile is a field-extraction policy: which column keys a group and which
// columns, coerced how, make up each record.
type Profile struct {
	Name        string      // Unique identifier: "boog"
	Description string      // Display text for --list-profiles
	KeyColumn   string      // Column holding the group key: "name"
	Shape       Shape       // Record serialization shape
	Fields      []FieldSpec // Record fields in output order
	Output      string      // Default output file name
	SeriesX     string      // Field used as the x axis for series views
}

// Columns returns every column the profile reads, key column first.
func (p Profile) Columns() []string {
	cols := make([]string, 0, len(p.Fields)+1)
	cols = append(cols, p.KeyColumn)
	for _, f := range p.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

// FieldIndex returns the position of the field with the given output name,
// or -1 if the profile has no such field.
func (p Profile) FieldIndex(name string) int {
	for i, f := range p.Fields {
		if f.OutputName() == name {
			return i
		}
	}
	return -1
}

// Validate checks that the profile is usable.
// Returns an error describing all validation failures.
func (p Profile) Validate() error {
	var errs []string

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "name is required")
	} else if p.Name == AutoProfile {
		errs = append(errs, fmt.Sprintf("name %q is reserved", AutoProfile))
	}
	if strings.TrimSpace(p.KeyColumn) == "" {
		errs = append(errs, "key column is required")
	}
	if p.Shape != ShapeTuple && p.Shape != ShapeObject {
		errs = append(errs, fmt.Sprintf("shape %q must be one of: tuple, object", p.Shape))
	}
	if len(p.Fields) == 0 {
		errs = append(errs, "at least one field is required")
	}

	seen := make(map[string]bool, len(p.Fields))
	for i, f := range p.Fields {
		if strings.TrimSpace(f.Column) == "" {
			errs = append(errs, fmt.Sprintf("field %d: column is required", i))
			continue
		}
		if !f.Coerce.Valid() {
			errs = append(errs, fmt.Sprintf("field %q: unknown coercion %q", f.Column, f.Coerce))
		}
		name := f.OutputName()
		if seen[name] {
			errs = append(errs, fmt.Sprintf("field %q: duplicate output name", name))
		}
		seen[name] = true
	}

	if p.SeriesX != "" && p.FieldIndex(p.SeriesX) < 0 {
		errs = append(errs, fmt.Sprintf("series_x %q does not name a field", p.SeriesX))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid profile %q:\n  - %s", p.Name, strings.Join(errs, "\n  - "))
	}
	return nil
}

// Row is one CSV data row keyed by column name.
// An empty string denotes an absent value.
type Row struct {
	Line   int // 1-based line in the source file (header is line 1)
	Values map[string]string
}

// Get returns the raw value for a column.
func (r Row) Get(column string) string {
	return r.Values[column]
}

// Summary describes a finished conversion.
type Summary struct {
	Profile string
	Rows    int
	Players int
	Output  string
}
