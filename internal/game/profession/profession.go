// Package profession provides the profession-leveling collaborator: professions,
// the property increments each level grants, and their per-property sums.
package profession

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/ruleset"
)

// ErrUnknownCode is returned for profession names outside the known set.
var ErrUnknownCode = errors.New("unknown profession code")

// Code identifies a profession.
type Code string

const (
	Commoner  Code = "commoner"
	Fighter   Code = "fighter"
	Thief     Code = "thief"
	Ranger    Code = "ranger"
	Wizard    Code = "wizard"
	Theurgist Code = "theurgist"
	Priest    Code = "priest"
)

// Codes returns every profession code.
func Codes() []Code {
	return []Code{Commoner, Fighter, Thief, Ranger, Wizard, Theurgist, Priest}
}

// ParseCode converts a case-insensitive name into a Code.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Codes() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCode, s)
}

// Profession is a profession with its primary properties.
type Profession struct {
	code    Code
	name    string
	primary []property.Code
}

// New builds a Profession from its content definition.
//
// Precondition: def must be non-nil.
// Postcondition: Returns a Profession, or an error if the ID or any primary
// property name is unknown.
func New(def *ruleset.Profession) (*Profession, error) {
	code, err := ParseCode(def.ID)
	if err != nil {
		return nil, err
	}
	primary := make([]property.Code, 0, len(def.PrimaryProperties))
	for _, name := range def.PrimaryProperties {
		pc, err := property.ParseCode(name)
		if err != nil {
			return nil, fmt.Errorf("profession %s: %w", code, err)
		}
		primary = append(primary, pc)
	}
	return &Profession{code: code, name: def.Name, primary: primary}, nil
}

func (p *Profession) Code() Code   { return p.code }
func (p *Profession) Name() string { return p.name }

// PrimaryProperties returns a copy of the profession's primary property codes.
func (p *Profession) PrimaryProperties() []property.Code {
	out := make([]property.Code, len(p.primary))
	copy(out, p.primary)
	return out
}

// IsPrimary reports whether code is one of the profession's primary properties.
func (p *Profession) IsPrimary(code property.Code) bool {
	for _, c := range p.primary {
		if c == code {
			return true
		}
	}
	return false
}
