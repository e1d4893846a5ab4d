package profiles

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/JonMunkholm/statgroup/internal/core"
	"gopkg.in/yaml.v3"
)

// File is the YAML document holding extra profiles.
type File struct {
	Profiles []ProfileDoc `yaml:"profiles"`
}

// ProfileDoc is the YAML form of a core.Profile.
type ProfileDoc struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Key         string     `yaml:"key"`
	Shape       string     `yaml:"shape"`
	Output      string     `yaml:"output"`
	SeriesX     string     `yaml:"series_x"`
	Fields      []FieldDoc `yaml:"fields"`
}

// FieldDoc is the YAML form of a core.FieldSpec.
type FieldDoc struct {
	Column string `yaml:"column"`
	Name   string `yaml:"name"`
	Coerce string `yaml:"coerce"`
}

func (d ProfileDoc) profile() core.Profile {
	shape := core.Shape(d.Shape)
	if shape == "" {
		shape = core.ShapeTuple
	}

	fields := make([]core.FieldSpec, len(d.Fields))
	for i, f := range d.Fields {
		fields[i] = core.FieldSpec{
			Column: f.Column,
			Name:   f.Name,
			Coerce: core.Coercion(f.Coerce),
		}
	}

	return core.Profile{
		Name:        d.Name,
		Description: d.Description,
		KeyColumn:   d.Key,
		Shape:       shape,
		Fields:      fields,
		Output:      d.Output,
		SeriesX:     d.SeriesX,
	}
}

// Parse decodes profiles from YAML and validates each one.
// Unknown keys are rejected so typos do not silently change behaviour.
func Parse(r io.Reader) ([]core.Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	out := make([]core.Profile, 0, len(f.Profiles))
	seen := make(map[string]bool, len(f.Profiles))
	for _, d := range f.Profiles {
		p := d.profile()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("invalid profile %q: defined more than once", p.Name)
		}
		seen[p.Name] = true
		out = append(out, p)
	}
	return out, nil
}

// LoadFile reads and validates the profiles in a YAML file.
func LoadFile(path string) ([]core.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}
	profiles, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return profiles, nil
}

// RegisterFile loads a YAML profiles file and registers every profile in it.
// Returns the names registered. Nothing is registered if any profile is invalid
// or collides with an existing name.
func RegisterFile(path string) ([]string, error) {
	loaded, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	for _, p := range loaded {
		if _, exists := core.Get(p.Name); exists {
			return nil, fmt.Errorf("%s: profile already registered: %s", path, p.Name)
		}
	}

	names := make([]string, 0, len(loaded))
	for _, p := range loaded {
		if err := core.TryRegister(p); err != nil {
			return names, err
		}
		names = append(names, p.Name)
	}
	return names, nil
}
