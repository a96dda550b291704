// Package race provides the race collaborator: a (race, subrace) pair read
// through the races table, with gender specific modifiers.
package race

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/tables"
)

var (
	// ErrUnknownRace is returned when a race/subrace pair has no races table row.
	ErrUnknownRace = errors.New("unknown race")
	// ErrUnknownGender is returned by ParseGender for anything but male or female.
	ErrUnknownGender = errors.New("unknown gender")
)

// Code identifies a race, e.g. "human".
type Code string

// SubraceCode identifies a subrace within a race, e.g. "common".
type SubraceCode string

// Gender selects the gender modifiers of the races table.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender converts a case-insensitive name into a Gender.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case Male, Female:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGender, s)
}

// Race is a concrete race and subrace.
type Race struct {
	code    Code
	subrace SubraceCode
}

// New returns the Race for code and subrace.
//
// Postcondition: Returns a Race whose row exists in races, or ErrUnknownRace.
func New(code Code, subrace SubraceCode, races *tables.RacesTable) (Race, error) {
	if _, ok := races.Row(string(code), string(subrace)); !ok {
		return Race{}, fmt.Errorf("%w: %s/%s", ErrUnknownRace, code, subrace)
	}
	return Race{code: code, subrace: subrace}, nil
}

func (r Race) RaceCode() Code           { return r.code }
func (r Race) SubraceCode() SubraceCode { return r.subrace }

// String renders the race as "human/common".
func (r Race) String() string {
	return fmt.Sprintf("%s/%s", r.code, r.subrace)
}

func (r Race) row(t *tables.Tables) tables.Row {
	row, _ := t.RacesTable().Row(string(r.code), string(r.subrace))
	return row
}

// BaseProperty returns the racial value of code for the given gender.
//
// Precondition: the race must be present in t's races table.
func (r Race) BaseProperty(code property.Code, gender Gender, t *tables.Tables) int {
	v := r.row(t).Property(code)
	if gender == Female {
		v += t.RacesTable().Female(string(r.code)).Property(code)
	}
	return v
}

// WeightInKg returns the racial weight for the given gender.
func (r Race) WeightInKg(gender Gender, t *tables.Tables) property.WeightInKg {
	w := r.row(t).WeightInKg
	if gender == Female {
		w += t.RacesTable().Female(string(r.code)).WeightInKg
	}
	return w
}

// HeightInCm returns the racial height; it does not depend on gender.
func (r Race) HeightInCm(t *tables.Tables) property.HeightInCm {
	return r.row(t).HeightInCm
}

// Size returns the racial size for the given gender.
func (r Race) Size(gender Gender, t *tables.Tables) property.Size {
	s := r.row(t).Size
	if gender == Female {
		s += t.RacesTable().Female(string(r.code)).Size
	}
	return property.Size(s)
}

// Senses returns the racial senses bonus.
func (r Race) Senses(t *tables.Tables) int {
	return t.RacesTable().Senses(string(r.code), string(r.subrace))
}
