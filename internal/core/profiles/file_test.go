package profiles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/statgroup/internal/core"
)

const lenientYAML = `
profiles:
  - name: boog-lenient-test
    description: BOOG with age optional
    key: name
    output: lenient.json
    series_x: age
    fields:
      - column: age
        coerce: optional-int
      - column: season_BOOG
        name: season
        coerce: optional-float
`

func TestParse(t *testing.T) {
	got, err := Parse(strings.NewReader(lenientYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(profiles) = %d, want 1", len(got))
	}

	p := got[0]
	if p.Name != "boog-lenient-test" || p.KeyColumn != "name" || p.Output != "lenient.json" {
		t.Errorf("profile = %+v", p)
	}
	if p.Shape != core.ShapeTuple {
		t.Errorf("Shape = %q, want default tuple", p.Shape)
	}
	if len(p.Fields) != 2 || p.Fields[1].OutputName() != "season" || p.Fields[0].Coerce != core.OptionalInt {
		t.Errorf("Fields = %+v", p.Fields)
	}
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(profiles) = %d, want 0", len(got))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown key",
			yaml:    "profiles:\n  - name: x\n    keycolumn: name\n",
			wantErr: "decode profiles",
		},
		{
			name:    "invalid coercion",
			yaml:    "profiles:\n  - name: x\n    key: name\n    fields:\n      - column: age\n        coerce: date\n",
			wantErr: "unknown coercion",
		},
		{
			name:    "missing key",
			yaml:    "profiles:\n  - name: x\n    fields:\n      - column: age\n        coerce: required-int\n",
			wantErr: "key column is required",
		},
		{
			name: "duplicate name",
			yaml: "profiles:\n" +
				"  - {name: x, key: k, fields: [{column: a, coerce: required-int}]}\n" +
				"  - {name: x, key: k, fields: [{column: a, coerce: required-int}]}\n",
			wantErr: "defined more than once",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte(lenientYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	names, err := RegisterFile(path)
	if err != nil {
		t.Fatalf("RegisterFile() error = %v", err)
	}
	if len(names) != 1 || names[0] != "boog-lenient-test" {
		t.Errorf("names = %v", names)
	}

	p, ok := core.Get("boog-lenient-test")
	if !ok {
		t.Fatal("profile not registered")
	}

	rows, err := core.ReadRows(strings.NewReader("name,age,season_BOOG\nRuth,,\n"), p)
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	g, err := core.Group(rows, p)
	if err != nil {
		t.Fatalf("Group() error = %v", err)
	}
	out, _ := core.Marshal(g, core.EncodeOptions{})
	if string(out) != `{"Ruth":[[null,null]]}` {
		t.Errorf("output = %s", out)
	}

	// Registering the same file twice collides.
	if _, err := RegisterFile(path); err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("second RegisterFile() error = %v, want already registered", err)
	}
}

func TestRegisterFile_CollidesWithBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	yaml := "profiles:\n  - {name: maws, key: Player, fields: [{column: Season, coerce: required-int}]}\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := RegisterFile(path); err == nil {
		t.Fatal("RegisterFile() expected collision error")
	}

	p, _ := core.Get("maws")
	if len(p.Fields) != 4 {
		t.Error("built-in maws profile was replaced")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("LoadFile() expected error for missing file")
	}
}

func TestLoadFile_Example(t *testing.T) {
	got, err := LoadFile(filepath.Join("..", "..", "..", "profiles.example.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(profiles) = %d, want 2", len(got))
	}
	if got[1].Shape != core.ShapeObject || got[1].FieldIndex("maws") != 1 {
		t.Errorf("maws-short = %+v", got[1])
	}
}
