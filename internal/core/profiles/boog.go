package profiles

import "github.com/JonMunkholm/statgroup/internal/core"

func init() {
	registerBoog()
	registerBoogStrict()
}

// registerBoog registers the BOOG export where every metric may be blank,
// e.g. seasons a player did not qualify for.
func registerBoog() {
	core.Register(core.Profile{
		Name:        "boog",
		Description: "BOOG by age; metrics and rates may be blank",
		KeyColumn:   "name",
		Shape:       core.ShapeTuple,
		Fields: []core.FieldSpec{
			{Column: "age", Coerce: core.RequiredInt},
			{Column: "season_BOOG", Coerce: core.OptionalFloat},
			{Column: "career_to_date_BOOG", Coerce: core.OptionalFloat},
			{Column: "hof_rate", Coerce: core.OptionalFloat},
			{Column: "bbwaa_rate", Coerce: core.OptionalFloat},
		},
		Output:  "boog.json",
		SeriesX: "age",
	})
}

// registerBoogStrict registers the older three-column BOOG export where
// both metrics must be present.
func registerBoogStrict() {
	core.Register(core.Profile{
		Name:        "boog-strict",
		Description: "BOOG by age; season and career metrics required",
		KeyColumn:   "name",
		Shape:       core.ShapeTuple,
		Fields: []core.FieldSpec{
			{Column: "age", Coerce: core.RequiredInt},
			{Column: "season_BOOG", Coerce: core.RequiredFloat},
			{Column: "career_to_date_BOOG", Coerce: core.RequiredFloat},
		},
		Output:  "boog.json",
		SeriesX: "age",
	})
}
