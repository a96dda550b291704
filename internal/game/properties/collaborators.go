// Package properties derives a character's properties by levels: the clamped
// first level base properties and body metrics, the sums granted by later
// levels, and every derived property built from their totals.
package properties

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockproperties -source=collaborators.go

import (
	"github.com/cory-johannsen/drdsheet/internal/game/profession"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/race"
	"github.com/cory-johannsen/drdsheet/internal/game/tables"
)

// Race supplies the racial values of a character. race.Race implements it.
type Race interface {
	RaceCode() race.Code
	SubraceCode() race.SubraceCode
	BaseProperty(code property.Code, gender race.Gender, t *tables.Tables) int
	WeightInKg(gender race.Gender, t *tables.Tables) property.WeightInKg
	HeightInCm(t *tables.Tables) property.HeightInCm
	Size(gender race.Gender, t *tables.Tables) property.Size
	Senses(t *tables.Tables) int
}

// Talents supplies the properties granted by fate. fate.Properties implements it.
type Talents interface {
	Property(code property.Code) int
	Strength() int
}

// ProfessionLevels supplies the property increments of the profession
// progression. *profession.Levels implements it.
type ProfessionLevels interface {
	FirstLevelModifier(code property.Code) int
	NextLevelsModifier(code property.Code) int
	FirstLevelProfessionCode() profession.Code
}
