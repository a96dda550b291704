// Package character assembles a character from its race, fate and profession
// progression, and renders its property sheet.
package character

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cory-johannsen/drdsheet/internal/game/fate"
	"github.com/cory-johannsen/drdsheet/internal/game/profession"
	"github.com/cory-johannsen/drdsheet/internal/game/properties"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/race"
)

// sheetNamespace scopes the name based character IDs.
var sheetNamespace = uuid.MustParse("6f1c2a4e-9b7d-5e3a-8c21-0d4f6b8a9e17")

// Character is a built character and its property snapshot.
//
// ID is derived from the inputs; the same inputs always yield the same ID.
type Character struct {
	ID     uuid.UUID
	Name   string
	Race   race.Race
	Gender race.Gender
	Fate   fate.Properties
	Levels *profession.Levels
	Body   properties.BodyAdjustments

	Properties *properties.ByLevels
}

// Profession returns the code of the character's profession.
func (c *Character) Profession() profession.Code {
	return c.Levels.FirstLevelProfessionCode()
}

// Level returns the character's current level.
func (c *Character) Level() int {
	return c.Levels.CurrentLevel()
}

// sheetID returns the name based UUID of the given inputs. Every field is
// quoted so free text such as the name cannot imitate a field separator.
func sheetID(name string, r race.Race, gender race.Gender, f fate.Properties, levels *profession.Levels, body properties.BodyAdjustments) uuid.UUID {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q %q %q %q %q", name, r.String(), string(gender), f.String(), string(levels.FirstLevelProfessionCode()))
	for _, l := range levels.NextLevels() {
		var pick strings.Builder
		for _, code := range property.BaseCodes() {
			if l.Increment(code) > 0 {
				pick.WriteString(code.Short())
			}
		}
		fmt.Fprintf(&sb, " %q", pick.String())
	}
	fmt.Fprintf(&sb, " %g %g %d", body.WeightInKg, body.HeightInCm, body.Age)
	return uuid.NewSHA1(sheetNamespace, []byte(sb.String()))
}
