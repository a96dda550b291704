package tables

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/ruleset"
)

// ErrDuplicateRow is returned when two definitions describe the same race and subrace.
var ErrDuplicateRow = errors.New("duplicate races table row")

// Row is one (race, subrace) line of the races table.
type Row struct {
	Race       string
	Subrace    string
	Name       string
	Toughness  int
	Size       int
	Senses     int
	WeightInKg property.WeightInKg
	HeightInCm property.HeightInCm

	properties map[property.Code]int
}

// Property returns the row's base value of code; unknown codes yield zero.
func (r Row) Property(code property.Code) int {
	return r.properties[code]
}

// FemaleModifiers are the adjustments a race applies to female characters.
type FemaleModifiers struct {
	Size       int
	WeightInKg property.WeightInKg

	properties map[property.Code]int
}

// Property returns the female modifier of code; unknown codes yield zero.
func (f FemaleModifiers) Property(code property.Code) int {
	return f.properties[code]
}

type rowKey struct {
	race    string
	subrace string
}

// RacesTable indexes race definitions by race and subrace.
// It is read-only after construction.
type RacesTable struct {
	rows   map[rowKey]Row
	female map[string]FemaleModifiers
	order  []rowKey
}

// NewRacesTable builds a RacesTable from loaded race definitions.
//
// Precondition: every definition must have passed ruleset.Race.Validate.
// Postcondition: Returns a table with one row per (race, subrace), or an error on
// duplicate rows or unknown property names.
func NewRacesTable(defs []*ruleset.Race) (*RacesTable, error) {
	t := &RacesTable{
		rows:   make(map[rowKey]Row),
		female: make(map[string]FemaleModifiers),
	}
	for _, def := range defs {
		if _, ok := t.female[def.ID]; ok {
			return nil, fmt.Errorf("%w: race %q defined twice", ErrDuplicateRow, def.ID)
		}
		femaleProps, err := parseProperties(def.Female.Properties)
		if err != nil {
			return nil, fmt.Errorf("race %q female modifiers: %w", def.ID, err)
		}
		t.female[def.ID] = FemaleModifiers{
			Size:       def.Female.Size,
			WeightInKg: property.WeightInKg(def.Female.WeightInKg),
			properties: femaleProps,
		}
		for _, sub := range def.Subraces {
			key := rowKey{race: def.ID, subrace: sub.ID}
			if _, ok := t.rows[key]; ok {
				return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateRow, def.ID, sub.ID)
			}
			props, err := parseProperties(sub.Properties)
			if err != nil {
				return nil, fmt.Errorf("race %s/%s: %w", def.ID, sub.ID, err)
			}
			t.rows[key] = Row{
				Race:       def.ID,
				Subrace:    sub.ID,
				Name:       sub.Name,
				Toughness:  sub.Toughness,
				Size:       sub.Size,
				Senses:     sub.Senses,
				WeightInKg: property.WeightInKg(sub.WeightInKg),
				HeightInCm: property.HeightInCm(sub.HeightInCm),
				properties: props,
			}
			t.order = append(t.order, key)
		}
	}
	return t, nil
}

func parseProperties(raw map[string]int) (map[property.Code]int, error) {
	out := make(map[property.Code]int, len(raw))
	for name, v := range raw {
		code, err := property.ParseCode(name)
		if err != nil {
			return nil, err
		}
		out[code] = v
	}
	return out, nil
}

// Row returns the row of the given race and subrace.
//
// Postcondition: Returns the row and true, or a zero Row and false if absent.
func (t *RacesTable) Row(race, subrace string) (Row, bool) {
	r, ok := t.rows[rowKey{race: race, subrace: subrace}]
	return r, ok
}

// Female returns the female modifiers of race; unknown races yield no modifiers.
func (t *RacesTable) Female(race string) FemaleModifiers {
	return t.female[race]
}

// Toughness returns the racial toughness bonus of the given row.
func (t *RacesTable) Toughness(race, subrace string) int {
	r, _ := t.Row(race, subrace)
	return r.Toughness
}

// Senses returns the racial senses bonus of the given row.
func (t *RacesTable) Senses(race, subrace string) int {
	r, _ := t.Row(race, subrace)
	return r.Senses
}

// Rows returns every row in definition order.
func (t *RacesTable) Rows() []Row {
	out := make([]Row, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.rows[k])
	}
	return out
}
