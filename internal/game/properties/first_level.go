package properties

import (
	"fmt"

	"github.com/cory-johannsen/drdsheet/internal/game/derived"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/race"
	"github.com/cory-johannsen/drdsheet/internal/game/tables"
)

// InitialPropertyIncreaseLimit is how far above its racial value a base
// property may rise at the first level.
const InitialPropertyIncreaseLimit = 3

// BodyAdjustments are the player chosen deviations from the racial body.
type BodyAdjustments struct {
	WeightInKg property.WeightInKg
	HeightInCm property.HeightInCm
	Age        property.Age
}

type firstLevelValue struct {
	unlimited property.BaseProperty
	limited   property.BaseProperty
}

// FirstLevel is the level 1 snapshot of a character: each base property both
// as summed and as clamped to its racial ceiling, plus the body metrics.
// It is immutable after construction.
type FirstLevel struct {
	values map[property.Code]firstLevelValue

	talents    Talents
	body       BodyAdjustments
	weightInKg property.WeightInKg
	heightInCm property.HeightInCm
	height     property.Height
	size       property.Size
}

// NewFirstLevel computes the first level properties.
//
// Precondition: r, talents, levels and t must be non-nil.
// Postcondition: Returns the snapshot, or *TooLowStrengthAdjustment when the
// strength granted by talents and the first profession level is negative.
func NewFirstLevel(
	r Race,
	gender race.Gender,
	talents Talents,
	levels ProfessionLevels,
	body BodyAdjustments,
	t *tables.Tables,
) (*FirstLevel, error) {
	values := make(map[property.Code]firstLevelValue, len(property.BaseCodes()))
	var strengthModifier int
	for _, code := range property.BaseCodes() {
		raceValue := r.BaseProperty(code, gender, t)
		modifier := levels.FirstLevelModifier(code)
		if code == property.Strength {
			strengthModifier = modifier
		}
		unlimited := raceValue + talents.Property(code) + modifier
		limited := min(unlimited, raceValue+InitialPropertyIncreaseLimit)
		values[code] = firstLevelValue{
			unlimited: property.New(code, unlimited),
			limited:   property.New(code, limited),
		}
	}

	// Size counts the strength gained by talents and the first profession
	// level only. Racial strength does not change it.
	sizeMod, err := sizeModifier(talents.Strength() + strengthModifier)
	if err != nil {
		return nil, err
	}

	heightInCm := r.HeightInCm(t) + body.HeightInCm
	return &FirstLevel{
		values:     values,
		talents:    talents,
		body:       body,
		weightInKg: r.WeightInKg(gender, t) + body.WeightInKg,
		heightInCm: heightInCm,
		height:     derived.NewHeight(heightInCm, t.DistanceTable()),
		size:       r.Size(gender, t) + property.Size(sizeMod),
	}, nil
}

func sizeModifier(strengthAdjustment int) (int, error) {
	switch {
	case strengthAdjustment < 0:
		return 0, &TooLowStrengthAdjustment{Adjustment: strengthAdjustment}
	case strengthAdjustment == 0:
		return -1, nil
	case strengthAdjustment == 1:
		return 0, nil
	default:
		return 1, nil
	}
}

func (f *FirstLevel) value(code property.Code) (firstLevelValue, error) {
	v, ok := f.values[code]
	if !ok {
		return firstLevelValue{}, fmt.Errorf("first level: %w: %q", property.ErrUnknownCode, code)
	}
	return v, nil
}

// Property returns the clamped first level value of code.
//
// Postcondition: Returns property.ErrUnknownCode for codes outside the base codes.
func (f *FirstLevel) Property(code property.Code) (property.BaseProperty, error) {
	v, err := f.value(code)
	return v.limited, err
}

// UnlimitedProperty returns the first level value of code before clamping.
//
// Postcondition: Returns property.ErrUnknownCode for codes outside the base codes.
func (f *FirstLevel) UnlimitedProperty(code property.Code) (property.BaseProperty, error) {
	v, err := f.value(code)
	return v.unlimited, err
}

// LossBecauseOfLimit returns how much of code was cut off by the ceiling.
//
// Postcondition: Returns a non-negative loss, or property.ErrUnknownCode.
func (f *FirstLevel) LossBecauseOfLimit(code property.Code) (int, error) {
	v, err := f.value(code)
	if err != nil {
		return 0, err
	}
	return v.unlimited.Value() - v.limited.Value(), nil
}

func (f *FirstLevel) limited(code property.Code) property.BaseProperty {
	return f.values[code].limited
}

func (f *FirstLevel) unlimited(code property.Code) property.BaseProperty {
	return f.values[code].unlimited
}

func (f *FirstLevel) loss(code property.Code) int {
	v := f.values[code]
	return v.unlimited.Value() - v.limited.Value()
}

func (f *FirstLevel) Strength() property.BaseProperty     { return f.limited(property.Strength) }
func (f *FirstLevel) Agility() property.BaseProperty      { return f.limited(property.Agility) }
func (f *FirstLevel) Knack() property.BaseProperty        { return f.limited(property.Knack) }
func (f *FirstLevel) Will() property.BaseProperty         { return f.limited(property.Will) }
func (f *FirstLevel) Intelligence() property.BaseProperty { return f.limited(property.Intelligence) }
func (f *FirstLevel) Charisma() property.BaseProperty     { return f.limited(property.Charisma) }

func (f *FirstLevel) UnlimitedStrength() property.BaseProperty { return f.unlimited(property.Strength) }
func (f *FirstLevel) UnlimitedAgility() property.BaseProperty  { return f.unlimited(property.Agility) }
func (f *FirstLevel) UnlimitedKnack() property.BaseProperty    { return f.unlimited(property.Knack) }
func (f *FirstLevel) UnlimitedWill() property.BaseProperty     { return f.unlimited(property.Will) }
func (f *FirstLevel) UnlimitedIntelligence() property.BaseProperty {
	return f.unlimited(property.Intelligence)
}
func (f *FirstLevel) UnlimitedCharisma() property.BaseProperty { return f.unlimited(property.Charisma) }

func (f *FirstLevel) StrengthLossBecauseOfLimit() int     { return f.loss(property.Strength) }
func (f *FirstLevel) AgilityLossBecauseOfLimit() int      { return f.loss(property.Agility) }
func (f *FirstLevel) KnackLossBecauseOfLimit() int        { return f.loss(property.Knack) }
func (f *FirstLevel) WillLossBecauseOfLimit() int         { return f.loss(property.Will) }
func (f *FirstLevel) IntelligenceLossBecauseOfLimit() int { return f.loss(property.Intelligence) }
func (f *FirstLevel) CharismaLossBecauseOfLimit() int     { return f.loss(property.Charisma) }

// Talents returns the talents the snapshot was built from.
func (f *FirstLevel) Talents() Talents { return f.talents }

func (f *FirstLevel) WeightInKgAdjustment() property.WeightInKg { return f.body.WeightInKg }
func (f *FirstLevel) WeightInKg() property.WeightInKg           { return f.weightInKg }
func (f *FirstLevel) HeightInCmAdjustment() property.HeightInCm { return f.body.HeightInCm }
func (f *FirstLevel) HeightInCm() property.HeightInCm           { return f.heightInCm }

// Height is the distance bonus of HeightInCm.
func (f *FirstLevel) Height() property.Height { return f.height }
func (f *FirstLevel) Size() property.Size     { return f.size }
func (f *FirstLevel) Age() property.Age       { return f.body.Age }
