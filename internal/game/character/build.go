package character

import (
	"errors"

	"github.com/cory-johannsen/drdsheet/internal/game/fate"
	"github.com/cory-johannsen/drdsheet/internal/game/profession"
	"github.com/cory-johannsen/drdsheet/internal/game/properties"
	"github.com/cory-johannsen/drdsheet/internal/game/race"
	"github.com/cory-johannsen/drdsheet/internal/game/tables"
)

// Build constructs a Character and derives its properties.
//
// Precondition: name must be non-empty; levels and t must be non-nil.
// Postcondition: Returns the Character, or a non-nil error. A
// *properties.TooLowStrengthAdjustment is returned as is.
func Build(
	name string,
	r race.Race,
	gender race.Gender,
	f fate.Properties,
	levels *profession.Levels,
	body properties.BodyAdjustments,
	t *tables.Tables,
) (*Character, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	if levels == nil {
		return nil, errors.New("profession levels must not be nil")
	}
	if t == nil {
		return nil, errors.New("tables must not be nil")
	}

	props, err := properties.NewByLevels(r, gender, f, levels, body, t)
	if err != nil {
		return nil, err
	}
	return &Character{
		ID:         sheetID(name, r, gender, f, levels, body),
		Name:       name,
		Race:       r,
		Gender:     gender,
		Fate:       f,
		Levels:     levels,
		Body:       body,
		Properties: props,
	}, nil
}
