package core

import (
	"encoding/json"
	"fmt"
)

// Record is the coerced values extracted from one row, in field order.
// Each value is a pgtype.Int8 or pgtype.Float8.
type Record struct {
	Values []any
	fields []FieldSpec
	shape  Shape
}

// NewRecord builds a record for a profile. Mostly useful in tests.
func NewRecord(p Profile, values ...any) Record {
	return Record{Values: values, fields: p.Fields, shape: p.Shape}
}

// Grouped maps a group key to its records in input order.
type Grouped map[string][]Record

// Rows returns the total number of records across all groups.
func (g Grouped) Rows() int {
	n := 0
	for _, recs := range g {
		n += len(recs)
	}
	return n
}

// Group folds rows into per-key record sequences using the profile.
//
// Rows are processed in order; a record is appended to its key's sequence
// as it is read, so sequence order equals arrival order. The first
// ParseError aborts the whole operation and no partial result is returned.
func Group(rows []Row, p Profile) (Grouped, error) {
	out := make(Grouped)

	for i, row := range rows {
		line := row.Line
		if line == 0 {
			line = i + 2 // header is line 1
		}

		key := row.Get(p.KeyColumn)

		rec, err := extract(row, line, p)
		if err != nil {
			return nil, err
		}

		out[key] = append(out[key], rec)
	}

	return out, nil
}

// extract coerces one row's fields in profile order.
func extract(row Row, line int, p Profile) (Record, error) {
	values := make([]any, len(p.Fields))

	for i, spec := range p.Fields {
		raw := row.Get(spec.Column)
		v, err := Coerce(raw, spec)
		if err != nil {
			return Record{}, &ParseError{
				Line:   line,
				Column: spec.Column,
				Value:  raw,
				Coerce: spec.Coerce,
				Err:    err,
			}
		}
		values[i] = v
	}

	return Record{Values: values, fields: p.Fields, shape: p.Shape}, nil
}

// MarshalJSON writes the record as a positional array or, for object-shaped
// profiles, as an object whose keys follow field order.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.shape != ShapeObject {
		return json.Marshal(r.Values)
	}

	if len(r.fields) != len(r.Values) {
		return nil, fmt.Errorf("record has %d values for %d fields", len(r.Values), len(r.fields))
	}

	buf := []byte{'{'}
	for i, f := range r.fields {
		if i > 0 {
			buf = append(buf, ',')
		}
		name, err := json.Marshal(f.OutputName())
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf = append(buf, name...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	buf = append(buf, '}')
	return buf, nil
}
