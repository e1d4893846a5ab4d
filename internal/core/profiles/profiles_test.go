package profiles

import (
	"errors"
	"strings"
	"testing"

	"github.com/JonMunkholm/statgroup/internal/core"
)

// convert runs the read, group and marshal steps against an in-memory CSV.
func convert(t *testing.T, profile, csv string) (string, error) {
	t.Helper()
	p, err := core.Lookup(profile)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", profile, err)
	}

	rows, err := core.ReadRows(strings.NewReader(csv), p)
	if err != nil {
		return "", err
	}
	g, err := core.Group(rows, p)
	if err != nil {
		return "", err
	}
	out, err := core.Marshal(g, core.EncodeOptions{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return string(out), nil
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"boog", "boog-strict", "maws"} {
		p, ok := core.Get(name)
		if !ok {
			t.Errorf("profile %q not registered", name)
			continue
		}
		if err := p.Validate(); err != nil {
			t.Errorf("profile %q invalid: %v", name, err)
		}
	}
}

func TestBoog_EndToEnd(t *testing.T) {
	csv := "name,age,season_BOOG,career_to_date_BOOG,hof_rate,bbwaa_rate\n" +
		"Ruth,25,10.2,10.2,0.5,0.4\n" +
		"Ruth,26,,10.2,0.5,0.4\n"

	got, err := convert(t, "boog", csv)
	if err != nil {
		t.Fatalf("convert() error = %v", err)
	}

	want := `{"Ruth":[[25,10.2,10.2,0.5,0.4],[26,null,10.2,0.5,0.4]]}`
	if got != want {
		t.Errorf("output = %s, want %s", got, want)
	}
}

func TestMaws_EndToEnd(t *testing.T) {
	csv := "Player,Season,Age,MAWS,Cumulative\nMays,1951,20,3.1,3.1\n"

	got, err := convert(t, "maws", csv)
	if err != nil {
		t.Fatalf("convert() error = %v", err)
	}

	want := `{"Mays":[{"Season":1951,"Age":20,"MAWS":3.1,"Cumulative":3.1}]}`
	if got != want {
		t.Errorf("output = %s, want %s", got, want)
	}
}

func TestBoogStrict_RequiresMetrics(t *testing.T) {
	csv := "name,age,season_BOOG,career_to_date_BOOG\nRuth,26,,10.2\n"

	_, err := convert(t, "boog-strict", csv)
	var pe *core.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *core.ParseError", err)
	}
	if pe.Column != "season_BOOG" {
		t.Errorf("Column = %q, want season_BOOG", pe.Column)
	}

	// The lenient profile accepts the same row but needs the rate columns.
	_, err = convert(t, "boog", csv)
	var fe *core.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *core.FormatError", err)
	}
}

func TestRequiredAgeEmptyFailsForEveryProfile(t *testing.T) {
	tests := map[string]string{
		"boog":        "name,age,season_BOOG,career_to_date_BOOG,hof_rate,bbwaa_rate\nRuth,,1,1,1,1\n",
		"boog-strict": "name,age,season_BOOG,career_to_date_BOOG\nRuth,,1,1\n",
		"maws":        "Player,Season,Age,MAWS,Cumulative\nMays,1951,,3.1,3.1\n",
	}

	for profile, csv := range tests {
		t.Run(profile, func(t *testing.T) {
			got, err := convert(t, profile, csv)
			var pe *core.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v, want *core.ParseError", err)
			}
			if got != "" {
				t.Errorf("output = %q, want none", got)
			}
		})
	}
}
