package profiles

import "github.com/JonMunkholm/statgroup/internal/core"

func init() {
	core.Register(core.Profile{
		Name:        "maws",
		Description: "MAWS by season, written as named-field objects",
		KeyColumn:   "Player",
		Shape:       core.ShapeObject,
		Fields: []core.FieldSpec{
			{Column: "Season", Coerce: core.RequiredInt},
			{Column: "Age", Coerce: core.RequiredInt},
			{Column: "MAWS", Coerce: core.RequiredFloat},
			{Column: "Cumulative", Coerce: core.RequiredFloat},
		},
		Output:  "maws.json",
		SeriesX: "Age",
	})
}
