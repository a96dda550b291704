package derived

import (
	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/race"
	"github.com/cory-johannsen/drdsheet/internal/game/tables"
)

// Toughness is Strength plus the racial toughness bonus.
type Toughness int

// NewToughness looks the racial bonus up by race and subrace.
func NewToughness(strength property.BaseProperty, code race.Code, subrace race.SubraceCode, races *tables.RacesTable) Toughness {
	return Toughness(strength.Value() + races.Toughness(string(code), string(subrace)))
}

// Endurance is the rounded average of Strength and Will.
type Endurance int

func NewEndurance(strength, will property.BaseProperty) Endurance {
	return Endurance(average(strength.Value(), will.Value()))
}

// Speed is the rounded average of Strength and Agility, corrected by height.
type Speed int

func NewSpeed(strength, agility property.BaseProperty, height property.Height) Speed {
	return Speed(average(strength.Value(), agility.Value()) + ceiledThird(int(height)) - 2)
}

// Senses is Knack plus the racial senses bonus.
type Senses int

func NewSenses(knack property.BaseProperty, raceSenses int) Senses {
	return Senses(knack.Value() + raceSenses)
}

// Beauty, Dangerousness and Dignity are the aspects of visage: an average of
// two properties plus half of Charisma.
type (
	Beauty        int
	Dangerousness int
	Dignity       int
)

func NewBeauty(agility, knack, charisma property.BaseProperty) Beauty {
	return Beauty(average(agility.Value(), knack.Value()) + half(charisma.Value()))
}

func NewDangerousness(strength, will, charisma property.BaseProperty) Dangerousness {
	return Dangerousness(average(strength.Value(), will.Value()) + half(charisma.Value()))
}

func NewDignity(intelligence, will, charisma property.BaseProperty) Dignity {
	return Dignity(average(intelligence.Value(), will.Value()) + half(charisma.Value()))
}

// WoundBoundary is the number of wounds per wound row.
type WoundBoundary int

// NewWoundBoundary converts Toughness + 10 through the wounds table.
//
// Postcondition: Returns at least 1.
func NewWoundBoundary(toughness Toughness, wounds tables.WoundsTable) WoundBoundary {
	return WoundBoundary(max(1, wounds.ToWounds(int(toughness)+10)))
}

// FatigueBoundary is the number of fatigue points per fatigue row.
type FatigueBoundary int

// NewFatigueBoundary converts Endurance + 10 through the fatigue table.
//
// Postcondition: Returns at least 1.
func NewFatigueBoundary(endurance Endurance, fatigue tables.FatigueTable) FatigueBoundary {
	return FatigueBoundary(max(1, fatigue.ToFatigue(int(endurance)+10)))
}
