// Package tables provides the lookup tables the derived properties are
// computed from: the races table and the distance, wounds and fatigue
// bonus tables.
package tables

import (
	"fmt"

	"github.com/cory-johannsen/drdsheet/internal/game/ruleset"
)

// Tables bundles every lookup table. It is read-only and safe to share.
type Tables struct {
	races    *RacesTable
	distance DistanceTable
	wounds   WoundsTable
	fatigue  FatigueTable
}

// New returns a Tables over the given races table.
//
// Precondition: races must be non-nil.
func New(races *RacesTable) *Tables {
	if races == nil {
		panic("tables.New: precondition violated: races table must be non-nil")
	}
	return &Tables{races: races}
}

// Load reads race definitions from racesDir and builds the tables.
//
// Precondition: racesDir must be a readable directory of race YAML files.
// Postcondition: Returns ready tables or a non-nil error.
func Load(racesDir string) (*Tables, error) {
	defs, err := ruleset.LoadRaces(racesDir)
	if err != nil {
		return nil, fmt.Errorf("loading races: %w", err)
	}
	races, err := NewRacesTable(defs)
	if err != nil {
		return nil, fmt.Errorf("building races table: %w", err)
	}
	return New(races), nil
}

func (t *Tables) RacesTable() *RacesTable      { return t.races }
func (t *Tables) DistanceTable() DistanceTable { return t.distance }
func (t *Tables) WoundsTable() WoundsTable     { return t.wounds }
func (t *Tables) FatigueTable() FatigueTable   { return t.fatigue }
