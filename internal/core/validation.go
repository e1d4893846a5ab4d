package core

// validation.go checks a CSV header against a profile before any row is read.
// Column names match exactly (case-sensitive) after trimming whitespace.
// Extra columns are ignored.

import "errors"

// HeaderIndex maps column names to their position in the CSV row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// When a name repeats, the last occurrence wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[CleanHeader(h)] = i
	}
	return idx
}

// ValidateHeaders checks that every column the profile reads exists in the header.
// Returns the header index, or a FormatError listing all missing columns.
func ValidateHeaders(header []string, p Profile) (HeaderIndex, error) {
	idx := MakeHeaderIndex(header)
	var missing []string
	seen := make(map[string]bool)

	for _, col := range p.Columns() {
		if seen[col] {
			continue
		}
		seen[col] = true
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return nil, &FormatError{
			Missing: missing,
			Err:     errors.New("missing required column"),
		}
	}
	return idx, nil
}
