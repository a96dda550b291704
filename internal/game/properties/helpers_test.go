package properties_test

import (
	"github.com/cory-johannsen/drdsheet/internal/game/profession"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/race"
	"github.com/cory-johannsen/drdsheet/internal/game/ruleset"
	"github.com/cory-johannsen/drdsheet/internal/game/tables"
)

var humanDef = &ruleset.Race{
	ID:   "human",
	Name: "Human",
	Subraces: []ruleset.Subrace{
		{
			ID:         "common",
			Name:       "Common human",
			WeightInKg: 80,
			HeightInCm: 180,
		},
		{
			ID:         "highlander",
			Name:       "Highlander",
			Properties: map[string]int{"strength": 1, "will": 1, "intelligence": -1, "charisma": -1},
			WeightInKg: 80,
			HeightInCm: 180,
		},
	},
	Female: ruleset.FemaleModifiers{
		Properties: map[string]int{"strength": -1, "charisma": 1},
		Size:       -1,
		WeightInKg: -10,
	},
}

func testTables() *tables.Tables {
	races, err := tables.NewRacesTable([]*ruleset.Race{humanDef})
	if err != nil {
		panic(err)
	}
	return tables.New(races)
}

func humanRace(subrace race.SubraceCode) race.Race {
	t := testTables()
	r, err := race.New("human", subrace, t.RacesTable())
	if err != nil {
		panic(err)
	}
	return r
}

var definitions = map[profession.Code]*ruleset.Profession{
	profession.Commoner: {ID: "commoner", Name: "Commoner"},
	profession.Fighter:  {ID: "fighter", Name: "Fighter", PrimaryProperties: []string{"strength", "agility"}},
}

func levelsOf(code profession.Code, next ...[2]property.Code) *profession.Levels {
	p, err := profession.New(definitions[code])
	if err != nil {
		panic(err)
	}
	var nextLevels []profession.Level
	for i, pick := range next {
		l, err := profession.NewNextLevel(p, i+2, pick[0], pick[1])
		if err != nil {
			panic(err)
		}
		nextLevels = append(nextLevels, l)
	}
	levels, err := profession.NewLevels(profession.NewFirstLevel(p), nextLevels...)
	if err != nil {
		panic(err)
	}
	return levels
}

// stubRace serves fixed racial values regardless of gender.
type stubRace struct {
	values     map[property.Code]int
	weightInKg property.WeightInKg
	heightInCm property.HeightInCm
	size       property.Size
	senses     int
}

func (s stubRace) RaceCode() race.Code           { return "human" }
func (s stubRace) SubraceCode() race.SubraceCode { return "common" }
func (s stubRace) BaseProperty(code property.Code, _ race.Gender, _ *tables.Tables) int {
	return s.values[code]
}
func (s stubRace) WeightInKg(race.Gender, *tables.Tables) property.WeightInKg { return s.weightInKg }
func (s stubRace) HeightInCm(*tables.Tables) property.HeightInCm              { return s.heightInCm }
func (s stubRace) Size(race.Gender, *tables.Tables) property.Size             { return s.size }
func (s stubRace) Senses(*tables.Tables) int                                  { return s.senses }

type stubTalents map[property.Code]int

func (s stubTalents) Property(code property.Code) int { return s[code] }
func (s stubTalents) Strength() int                   { return s[property.Strength] }

type stubLevels struct {
	first map[property.Code]int
	next  map[property.Code]int
	code  profession.Code
}

func (s stubLevels) FirstLevelModifier(code property.Code) int { return s.first[code] }
func (s stubLevels) NextLevelsModifier(code property.Code) int { return s.next[code] }
func (s stubLevels) FirstLevelProfessionCode() profession.Code {
	if s.code == "" {
		return profession.Commoner
	}
	return s.code
}
