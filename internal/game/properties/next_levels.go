package properties

import (
	"fmt"

	"github.com/cory-johannsen/drdsheet/internal/game/property"
)

// NextLevels holds the property increments of every level after the first.
type NextLevels struct {
	values map[property.Code]property.BaseProperty
}

// NewNextLevels sums the next levels modifiers per base property.
//
// Precondition: levels must be non-nil.
func NewNextLevels(levels ProfessionLevels) *NextLevels {
	values := make(map[property.Code]property.BaseProperty, len(property.BaseCodes()))
	for _, code := range property.BaseCodes() {
		values[code] = property.New(code, levels.NextLevelsModifier(code))
	}
	return &NextLevels{values: values}
}

// Property returns the summed next levels increment of code.
//
// Postcondition: Returns property.ErrUnknownCode for codes outside the base codes.
func (n *NextLevels) Property(code property.Code) (property.BaseProperty, error) {
	v, ok := n.values[code]
	if !ok {
		return property.BaseProperty{}, fmt.Errorf("next levels: %w: %q", property.ErrUnknownCode, code)
	}
	return v, nil
}

func (n *NextLevels) Strength() property.BaseProperty     { return n.values[property.Strength] }
func (n *NextLevels) Agility() property.BaseProperty      { return n.values[property.Agility] }
func (n *NextLevels) Knack() property.BaseProperty        { return n.values[property.Knack] }
func (n *NextLevels) Will() property.BaseProperty         { return n.values[property.Will] }
func (n *NextLevels) Intelligence() property.BaseProperty { return n.values[property.Intelligence] }
func (n *NextLevels) Charisma() property.BaseProperty     { return n.values[property.Charisma] }
