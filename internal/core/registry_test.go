package core

import (
	"reflect"
	"strings"
	"testing"
)

func TestRegistry(t *testing.T) {
	Clear()
	defer Clear()

	Register(testMaws)
	Register(testBoog)

	if ProfileCount() != 2 {
		t.Errorf("ProfileCount() = %d, want 2", ProfileCount())
	}
	if got, want := Names(), []string{"boog", "maws"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	p, ok := Get("maws")
	if !ok || p.KeyColumn != "Player" {
		t.Errorf("Get(maws) = %+v, %v", p, ok)
	}

	if _, err := Lookup("nope"); err == nil || !strings.Contains(err.Error(), "unknown profile") {
		t.Errorf("Lookup(nope) error = %v, want unknown profile", err)
	}
}

func TestRegister_PanicsOnDuplicate(t *testing.T) {
	Clear()
	defer Clear()

	Register(testBoog)

	defer func() {
		if recover() == nil {
			t.Error("Register() of duplicate name did not panic")
		}
	}()
	Register(testBoog)
}

func TestTryRegister_DefaultsOutput(t *testing.T) {
	Clear()
	defer Clear()

	p := testBoogStrict
	p.Name = "custom"
	p.Output = ""
	if err := TryRegister(p); err != nil {
		t.Fatalf("TryRegister() error = %v", err)
	}

	got, _ := Get("custom")
	if got.Output != "custom.json" {
		t.Errorf("Output = %q, want %q", got.Output, "custom.json")
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr string
	}{
		{name: "valid", mutate: func(p *Profile) {}},
		{name: "empty name", mutate: func(p *Profile) { p.Name = "" }, wantErr: "name is required"},
		{name: "empty key", mutate: func(p *Profile) { p.KeyColumn = " " }, wantErr: "key column is required"},
		{name: "bad shape", mutate: func(p *Profile) { p.Shape = "table" }, wantErr: "shape"},
		{name: "no fields", mutate: func(p *Profile) { p.Fields = nil }, wantErr: "at least one field"},
		{
			name: "unknown coercion",
			mutate: func(p *Profile) {
				p.Fields = []FieldSpec{{Column: "age", Coerce: "required-date"}}
			},
			wantErr: "unknown coercion",
		},
		{
			name: "duplicate output name",
			mutate: func(p *Profile) {
				p.Fields = []FieldSpec{
					{Column: "age", Coerce: RequiredInt},
					{Column: "Age", Name: "age", Coerce: RequiredInt},
				}
			},
			wantErr: "duplicate output name",
		},
		{name: "bad series x", mutate: func(p *Profile) { p.SeriesX = "season" }, wantErr: "series_x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testBoog
			p.Fields = append([]FieldSpec(nil), testBoog.Fields...)
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestProfileColumnsAndFieldIndex(t *testing.T) {
	want := []string{"Player", "Season", "Age", "MAWS", "Cumulative"}
	if got := testMaws.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}
	if i := testMaws.FieldIndex("MAWS"); i != 2 {
		t.Errorf("FieldIndex(MAWS) = %d, want 2", i)
	}
	if i := testMaws.FieldIndex("nope"); i != -1 {
		t.Errorf("FieldIndex(nope) = %d, want -1", i)
	}
}
