// Package derived computes the secondary character properties. Every formula
// is a pure function of already finalized values and the lookup tables.
package derived

import (
	"fmt"

	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/tables"
)

// BaseProperties is a by-value snapshot of the six finalized base properties.
type BaseProperties struct {
	Strength     property.BaseProperty
	Agility      property.BaseProperty
	Knack        property.BaseProperty
	Will         property.BaseProperty
	Intelligence property.BaseProperty
	Charisma     property.BaseProperty
}

// baseFields maps each base code to its field of the snapshot.
var baseFields = map[property.Code]func(*BaseProperties) *property.BaseProperty{
	property.Strength:     func(b *BaseProperties) *property.BaseProperty { return &b.Strength },
	property.Agility:      func(b *BaseProperties) *property.BaseProperty { return &b.Agility },
	property.Knack:        func(b *BaseProperties) *property.BaseProperty { return &b.Knack },
	property.Will:         func(b *BaseProperties) *property.BaseProperty { return &b.Will },
	property.Intelligence: func(b *BaseProperties) *property.BaseProperty { return &b.Intelligence },
	property.Charisma:     func(b *BaseProperties) *property.BaseProperty { return &b.Charisma },
}

// NewBaseProperties builds a snapshot from a code lookup.
//
// Precondition: lookup must return a value for every base code.
func NewBaseProperties(lookup func(property.Code) property.BaseProperty) BaseProperties {
	var b BaseProperties
	for _, code := range property.BaseCodes() {
		*baseFields[code](&b) = lookup(code)
	}
	return b
}

// Property returns the snapshot value of code.
//
// Postcondition: Returns property.ErrUnknownCode for codes outside the six base codes.
func (b BaseProperties) Property(code property.Code) (property.BaseProperty, error) {
	field, ok := baseFields[code]
	if !ok {
		return property.BaseProperty{}, fmt.Errorf("%w: %q", property.ErrUnknownCode, code)
	}
	return *field(&b), nil
}

// NewHeight returns the height property: the distance bonus of the body height.
func NewHeight(h property.HeightInCm, distance tables.DistanceTable) property.Height {
	return property.Height(distance.ToBonus(h.Meters()))
}
