package web

import (
	"fmt"
	"path"
	"strings"

	"github.com/JonMunkholm/statgroup/internal/core"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Dataset is the grouped document served by the viewer.
// It is built once at startup and read-only afterwards.
type Dataset struct {
	Profile core.Profile
	Grouped core.Grouped

	// Name is the path the full document is served under, e.g. "boog.json".
	Name string

	doc   []byte
	names []string // English collation order
}

// NewDataset encodes the document and sorts the player names.
// output overrides the profile's output name when set.
func NewDataset(p core.Profile, g core.Grouped, output string, opts core.EncodeOptions) (*Dataset, error) {
	doc, err := core.Marshal(g, opts)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	if output == "" {
		output = p.Output
	}

	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	collate.New(language.English).SortStrings(names)

	return &Dataset{
		Profile: p,
		Grouped: g,
		Name:    path.Base(output),
		doc:     doc,
		names:   names,
	}, nil
}

// Document returns the encoded grouped document.
func (d *Dataset) Document() []byte {
	return d.doc
}

// Players returns names starting with prefix (case-insensitive) in
// collation order. A limit of 0 returns every match.
func (d *Dataset) Players(prefix string, limit int) []string {
	prefix = strings.ToLower(prefix)

	result := make([]string, 0)
	for _, name := range d.names {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(name), prefix) {
			continue
		}
		result = append(result, name)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

// Series returns one [x, y, name] point per record of the player, where x
// is the profile's SeriesX field and y the named field.
func (d *Dataset) Series(player, field string) ([][3]any, error) {
	records, ok := d.Grouped[player]
	if !ok {
		return nil, fmt.Errorf("player not found: %s", player)
	}

	yi := d.Profile.FieldIndex(field)
	if yi < 0 {
		return nil, fmt.Errorf("field not found: %s", field)
	}
	xi := d.Profile.FieldIndex(d.Profile.SeriesX)
	if xi < 0 {
		return nil, fmt.Errorf("profile %s has no series axis: field not found", d.Profile.Name)
	}

	points := make([][3]any, len(records))
	for i, rec := range records {
		points[i] = [3]any{rec.Values[xi], rec.Values[yi], player}
	}
	return points, nil
}
