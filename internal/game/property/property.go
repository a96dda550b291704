// Package property defines the base property codes and the immutable value
// types a character sheet is made of.
package property

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCode is returned when a string or Code does not name one of the
// six base properties.
var ErrUnknownCode = errors.New("unknown base property code")

// Code identifies a base property.
type Code string

const (
	Strength     Code = "strength"
	Agility      Code = "agility"
	Knack        Code = "knack"
	Will         Code = "will"
	Intelligence Code = "intelligence"
	Charisma     Code = "charisma"
)

var baseCodes = [...]Code{Strength, Agility, Knack, Will, Intelligence, Charisma}

// BaseCodes returns the six base property codes in sheet order.
//
// Postcondition: Returns a fresh slice of length 6; callers may modify it.
func BaseCodes() []Code {
	out := make([]Code, len(baseCodes))
	copy(out, baseCodes[:])
	return out
}

// Valid reports whether c is one of the base property codes.
func (c Code) Valid() bool {
	for _, known := range baseCodes {
		if c == known {
			return true
		}
	}
	return false
}

// Short returns the three letter sheet label of the code.
func (c Code) Short() string {
	switch c {
	case Strength:
		return "SIL"
	case Agility:
		return "OBR"
	case Knack:
		return "ZRC"
	case Will:
		return "VOL"
	case Intelligence:
		return "INT"
	case Charisma:
		return "CHR"
	}
	return fmt.Sprintf("<%s>", string(c))
}

// ParseCode converts a case-insensitive name into a Code.
//
// Postcondition: Returns a valid Code, or ErrUnknownCode wrapped with the input.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCode, s)
	}
	return c, nil
}

// BaseProperty is an integer valued base property tagged with its code.
// Two values are equal iff both code and value match, so == is the
// equality relation.
type BaseProperty struct {
	code  Code
	value int
}

// New returns a BaseProperty with the given code and value.
func New(code Code, value int) BaseProperty {
	return BaseProperty{code: code, value: value}
}

// Code returns the property code.
func (p BaseProperty) Code() Code { return p.code }

// Value returns the property value.
func (p BaseProperty) Value() int { return p.value }

// Add returns a new BaseProperty of the same code increased by delta.
func (p BaseProperty) Add(delta int) BaseProperty {
	return BaseProperty{code: p.code, value: p.value + delta}
}

// String renders the property as "SIL +2".
func (p BaseProperty) String() string {
	return fmt.Sprintf("%s %+d", p.code.Short(), p.value)
}
