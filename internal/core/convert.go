package core

// convert.go provides the coercions from raw CSV cells to record values.
//
// Values are carried as pgtype.Int8 / pgtype.Float8. Valid=false is the
// absent value of an optional field and serializes as JSON null, which is
// also what the Postgres export writes as NULL.
//
// Unlike a lenient import, every coercion here is strict: a cell that is
// present but not a number is a ParseError, never a silent NULL.

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

var (
	errEmptyRequired = errors.New("required field is empty")
	errInvalidInt    = errors.New("invalid integer")
	errInvalidFloat  = errors.New("invalid number")
)

// ToPgInt8 parses a base-10 integer.
// An empty cell is an error unless optional is set, in which case it is absent.
func ToPgInt8(s string, optional bool) (pgtype.Int8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if optional {
			return pgtype.Int8{Valid: false}, nil
		}
		return pgtype.Int8{}, errEmptyRequired
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return pgtype.Int8{}, errInvalidInt
	}
	return pgtype.Int8{Int64: i, Valid: true}, nil
}

// ToPgFloat8 parses a floating-point number.
// An empty cell is an error unless optional is set, in which case it is absent.
// NaN and infinities are rejected since they have no JSON representation.
func ToPgFloat8(s string, optional bool) (pgtype.Float8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if optional {
			return pgtype.Float8{Valid: false}, nil
		}
		return pgtype.Float8{}, errEmptyRequired
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || isNonFinite(f) {
		return pgtype.Float8{}, errInvalidFloat
	}
	return pgtype.Float8{Float64: f, Valid: true}, nil
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Coerce converts a raw cell according to the field's coercion.
// The returned value is a pgtype.Int8 or pgtype.Float8.
func Coerce(raw string, spec FieldSpec) (any, error) {
	switch spec.Coerce {
	case RequiredInt, OptionalInt:
		return ToPgInt8(raw, spec.Coerce.Optional())
	case RequiredFloat, OptionalFloat:
		return ToPgFloat8(raw, spec.Coerce.Optional())
	default:
		return nil, errors.New("unknown coercion " + strconv.Quote(string(spec.Coerce)))
	}
}

// CleanHeader trims whitespace from a header cell.
// Matching stays case-sensitive.
func CleanHeader(s string) string {
	return strings.TrimSpace(s)
}
