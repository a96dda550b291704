package derived

import (
	"fmt"

	"github.com/cory-johannsen/drdsheet/internal/game/profession"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
)

// fightFormulas maps each profession to the base property part of its fight number.
var fightFormulas = map[profession.Code]func(BaseProperties) int{
	profession.Commoner: func(BaseProperties) int { return 0 },
	profession.Fighter:  func(p BaseProperties) int { return p.Agility.Value() },
	profession.Thief: func(p BaseProperties) int {
		return average(p.Agility.Value(), p.Knack.Value())
	},
	profession.Ranger: func(p BaseProperties) int {
		return average(p.Agility.Value(), p.Knack.Value())
	},
	profession.Wizard: func(p BaseProperties) int {
		return average(p.Agility.Value(), p.Intelligence.Value())
	},
	profession.Theurgist: func(p BaseProperties) int {
		return average(p.Agility.Value(), p.Intelligence.Value())
	},
	profession.Priest: func(p BaseProperties) int {
		return average(p.Agility.Value(), p.Charisma.Value())
	},
}

// FightNumber is the profession dependent combat readiness.
type FightNumber int

// NewFightNumber computes the fight number from the first profession and the
// finalized base properties, corrected by size.
//
// Precondition: code must be a valid profession.Code.
func NewFightNumber(code profession.Code, base BaseProperties, size property.Size) FightNumber {
	formula, ok := fightFormulas[code]
	if !ok {
		panic(fmt.Sprintf("derived.NewFightNumber: precondition violated: unknown profession %q", code))
	}
	return FightNumber(formula(base) + ceiledThird(int(size)) - 2)
}

// Attack is half of Agility, rounded down.
type Attack int

func NewAttack(agility property.BaseProperty) Attack {
	return Attack(flooredHalf(agility.Value()))
}

// Shooting is half of Knack, rounded down.
type Shooting int

func NewShooting(knack property.BaseProperty) Shooting {
	return Shooting(flooredHalf(knack.Value()))
}

// DefenseNumber is half of Agility, rounded up.
type DefenseNumber int

func NewDefenseNumber(agility property.BaseProperty) DefenseNumber {
	return DefenseNumber(ceiledHalf(agility.Value()))
}

// DefenseAgainstShooting lowers the defense number for larger bodies.
type DefenseAgainstShooting int

func NewDefenseAgainstShooting(defense DefenseNumber, size property.Size) DefenseAgainstShooting {
	return DefenseAgainstShooting(int(defense) - roundedThird(int(size)))
}
