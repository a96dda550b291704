package properties

import (
	"github.com/cory-johannsen/drdsheet/internal/game/derived"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/race"
	"github.com/cory-johannsen/drdsheet/internal/game/tables"
)

// ByLevels is the complete property snapshot of a character at its current
// level. It is immutable after construction.
type ByLevels struct {
	firstLevel *FirstLevel
	nextLevels *NextLevels
	base       derived.BaseProperties

	toughness              derived.Toughness
	endurance              derived.Endurance
	speed                  derived.Speed
	senses                 derived.Senses
	beauty                 derived.Beauty
	dangerousness          derived.Dangerousness
	dignity                derived.Dignity
	fightNumber            derived.FightNumber
	attack                 derived.Attack
	shooting               derived.Shooting
	defenseNumber          derived.DefenseNumber
	defenseAgainstShooting derived.DefenseAgainstShooting
	woundBoundary          derived.WoundBoundary
	fatigueBoundary        derived.FatigueBoundary
}

// NewByLevels builds the first level and next levels snapshots, sums them and
// derives every secondary property from the totals.
//
// Precondition: r, talents, levels and t must be non-nil.
// Postcondition: Returns the snapshot, or the *TooLowStrengthAdjustment of the
// first level unchanged.
func NewByLevels(
	r Race,
	gender race.Gender,
	talents Talents,
	levels ProfessionLevels,
	body BodyAdjustments,
	t *tables.Tables,
) (*ByLevels, error) {
	first, err := NewFirstLevel(r, gender, talents, levels, body, t)
	if err != nil {
		return nil, err
	}
	next := NewNextLevels(levels)

	b := &ByLevels{firstLevel: first, nextLevels: next}
	b.base = derived.NewBaseProperties(func(code property.Code) property.BaseProperty {
		return first.limited(code).Add(next.values[code].Value())
	})

	size := first.Size()
	b.toughness = derived.NewToughness(b.base.Strength, r.RaceCode(), r.SubraceCode(), t.RacesTable())
	b.endurance = derived.NewEndurance(b.base.Strength, b.base.Will)
	b.speed = derived.NewSpeed(b.base.Strength, b.base.Agility, first.Height())
	b.senses = derived.NewSenses(b.base.Knack, r.Senses(t))
	b.beauty = derived.NewBeauty(b.base.Agility, b.base.Knack, b.base.Charisma)
	b.dangerousness = derived.NewDangerousness(b.base.Strength, b.base.Will, b.base.Charisma)
	b.dignity = derived.NewDignity(b.base.Intelligence, b.base.Will, b.base.Charisma)
	b.fightNumber = derived.NewFightNumber(levels.FirstLevelProfessionCode(), b.base, size)
	b.attack = derived.NewAttack(b.base.Agility)
	b.shooting = derived.NewShooting(b.base.Knack)
	b.defenseNumber = derived.NewDefenseNumber(b.base.Agility)
	b.defenseAgainstShooting = derived.NewDefenseAgainstShooting(b.defenseNumber, size)
	b.woundBoundary = derived.NewWoundBoundary(b.toughness, t.WoundsTable())
	b.fatigueBoundary = derived.NewFatigueBoundary(b.endurance, t.FatigueTable())
	return b, nil
}

func (b *ByLevels) FirstLevel() *FirstLevel { return b.firstLevel }
func (b *ByLevels) NextLevels() *NextLevels { return b.nextLevels }

// BaseProperties returns the final base properties by value.
func (b *ByLevels) BaseProperties() derived.BaseProperties { return b.base }

// Property returns the final value of code.
//
// Postcondition: Returns property.ErrUnknownCode for codes outside the base codes.
func (b *ByLevels) Property(code property.Code) (property.BaseProperty, error) {
	return b.base.Property(code)
}

// Breakdown shows how one base property adds up.
type Breakdown struct {
	Code       property.Code
	Unlimited  int
	FirstLevel int
	Loss       int
	NextLevels int
	Final      int
}

// Breakdown returns the breakdown of every base property in property.BaseCodes order.
//
// Postcondition: Final == FirstLevel + NextLevels and Loss == Unlimited - FirstLevel for every entry.
func (b *ByLevels) Breakdown() []Breakdown {
	out := make([]Breakdown, 0, len(property.BaseCodes()))
	for _, code := range property.BaseCodes() {
		first := b.firstLevel.values[code]
		next := b.nextLevels.values[code].Value()
		out = append(out, Breakdown{
			Code:       code,
			Unlimited:  first.unlimited.Value(),
			FirstLevel: first.limited.Value(),
			Loss:       first.unlimited.Value() - first.limited.Value(),
			NextLevels: next,
			Final:      first.limited.Value() + next,
		})
	}
	return out
}

func (b *ByLevels) Strength() property.BaseProperty     { return b.base.Strength }
func (b *ByLevels) Agility() property.BaseProperty      { return b.base.Agility }
func (b *ByLevels) Knack() property.BaseProperty        { return b.base.Knack }
func (b *ByLevels) Will() property.BaseProperty         { return b.base.Will }
func (b *ByLevels) Intelligence() property.BaseProperty { return b.base.Intelligence }
func (b *ByLevels) Charisma() property.BaseProperty     { return b.base.Charisma }

// Body metrics do not change after the first level.
func (b *ByLevels) WeightInKg() property.WeightInKg { return b.firstLevel.WeightInKg() }
func (b *ByLevels) HeightInCm() property.HeightInCm { return b.firstLevel.HeightInCm() }
func (b *ByLevels) Height() property.Height         { return b.firstLevel.Height() }
func (b *ByLevels) Size() property.Size             { return b.firstLevel.Size() }
func (b *ByLevels) Age() property.Age               { return b.firstLevel.Age() }

func (b *ByLevels) Toughness() derived.Toughness         { return b.toughness }
func (b *ByLevels) Endurance() derived.Endurance         { return b.endurance }
func (b *ByLevels) Speed() derived.Speed                 { return b.speed }
func (b *ByLevels) Senses() derived.Senses               { return b.senses }
func (b *ByLevels) Beauty() derived.Beauty               { return b.beauty }
func (b *ByLevels) Dangerousness() derived.Dangerousness { return b.dangerousness }
func (b *ByLevels) Dignity() derived.Dignity             { return b.dignity }
func (b *ByLevels) FightNumber() derived.FightNumber     { return b.fightNumber }
func (b *ByLevels) Attack() derived.Attack               { return b.attack }
func (b *ByLevels) Shooting() derived.Shooting           { return b.shooting }
func (b *ByLevels) DefenseNumber() derived.DefenseNumber { return b.defenseNumber }
func (b *ByLevels) DefenseAgainstShooting() derived.DefenseAgainstShooting {
	return b.defenseAgainstShooting
}
func (b *ByLevels) WoundBoundary() derived.WoundBoundary     { return b.woundBoundary }
func (b *ByLevels) FatigueBoundary() derived.FatigueBoundary { return b.fatigueBoundary }
