package core

// detect.go picks a registered profile from a CSV header, for inputs whose
// layout is known but whose profile name is not.

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// AutoProfile is the profile name that asks for detection from the header.
const AutoProfile = "auto"

var errProfileUndetermined = errors.New("cannot determine profile from header")

// ProfileMatch reports how well a header fits one profile.
type ProfileMatch struct {
	Profile Profile
	Missing []string // Profile columns absent from the header
}

// Complete reports whether every column of the profile is present.
func (m ProfileMatch) Complete() bool {
	return len(m.Missing) == 0
}

// ReadHeader returns the first CSV record of r with a BOM stripped.
func ReadHeader(r io.Reader) ([]string, error) {
	reader, _ := WrapForReading(r)
	header, err := csv.NewReader(reader).Read()
	if err == io.EOF {
		return nil, &FormatError{Err: errEmptyFile}
	}
	if err != nil {
		return nil, &FormatError{Err: fmt.Errorf("invalid csv: %w", err)}
	}
	return header, nil
}

// MatchProfiles checks the header against every registered profile.
// Results are ordered best first: fewest missing columns, then most
// fields, then name.
func MatchProfiles(header []string) []ProfileMatch {
	idx := MakeHeaderIndex(header)

	all := All()
	matches := make([]ProfileMatch, 0, len(all))
	for _, p := range all {
		m := ProfileMatch{Profile: p}
		for _, col := range p.Columns() {
			if _, ok := idx[col]; !ok {
				m.Missing = append(m.Missing, col)
			}
		}
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if len(a.Missing) != len(b.Missing) {
			return len(a.Missing) < len(b.Missing)
		}
		return len(a.Profile.Fields) > len(b.Profile.Fields)
	})
	return matches
}

// Detect returns the complete match with the most fields.
// Fails when no profile matches or when the best matches tie.
func Detect(header []string) (Profile, error) {
	matches := MatchProfiles(header)
	if len(matches) == 0 || !matches[0].Complete() {
		return Profile{}, &FormatError{Err: fmt.Errorf("%w: no registered profile matches", errProfileUndetermined)}
	}

	best := matches[0]
	tied := []string{best.Profile.Name}
	for _, m := range matches[1:] {
		if m.Complete() && len(m.Profile.Fields) == len(best.Profile.Fields) {
			tied = append(tied, m.Profile.Name)
		}
	}
	if len(tied) > 1 {
		return Profile{}, &FormatError{Err: fmt.Errorf("%w: ambiguous between %s", errProfileUndetermined, strings.Join(tied, ", "))}
	}

	return best.Profile, nil
}

// DetectFile reads the header of path and detects its profile.
func DetectFile(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, &FormatError{Path: path, Err: err}
	}
	defer f.Close()

	header, err := ReadHeader(f)
	if err == nil {
		var p Profile
		p, err = Detect(header)
		if err == nil {
			return p, nil
		}
	}

	var fe *FormatError
	if errors.As(err, &fe) && fe.Path == "" {
		fe.Path = path
	}
	return Profile{}, err
}

// Resolve returns the named profile, detecting it from the input file when
// name is AutoProfile.
func Resolve(name, input string) (Profile, error) {
	if name == AutoProfile {
		return DetectFile(input)
	}
	return Lookup(name)
}
