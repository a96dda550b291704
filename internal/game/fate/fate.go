// Package fate provides the properties a character receives by fate: inborn
// talents independent of race and profession.
package fate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/drdsheet/internal/game/property"
)

// Properties holds the talent value of each base property. Codes without a
// value count as zero. The zero value is valid and grants no talents.
type Properties struct {
	values map[property.Code]int
}

// New returns Properties with the given talent values.
//
// Postcondition: Returns an error if values contains an unknown code.
func New(values map[property.Code]int) (Properties, error) {
	out := make(map[property.Code]int, len(values))
	for code, v := range values {
		if !code.Valid() {
			return Properties{}, fmt.Errorf("fate: %w: %q", property.ErrUnknownCode, code)
		}
		out[code] = v
	}
	return Properties{values: out}, nil
}

// Parse reads "strength=1,agility=2" into Properties. An empty string yields no talents.
func Parse(s string) (Properties, error) {
	values := make(map[property.Code]int)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, raw, ok := strings.Cut(part, "=")
		if !ok {
			return Properties{}, fmt.Errorf("fate: expected name=value, got %q", part)
		}
		code, err := property.ParseCode(name)
		if err != nil {
			return Properties{}, fmt.Errorf("fate: %w", err)
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Properties{}, fmt.Errorf("fate: value of %s: %w", code, err)
		}
		values[code] += v
	}
	return Properties{values: values}, nil
}

// Property returns the talent value of code.
func (p Properties) Property(code property.Code) int {
	return p.values[code]
}

// Strength returns the talent value of Strength.
func (p Properties) Strength() int {
	return p.values[property.Strength]
}

// String renders the non-zero talents in sheet order, e.g. "strength=1,agility=2".
func (p Properties) String() string {
	parts := make([]string, 0, len(p.values))
	for _, code := range property.BaseCodes() {
		if v := p.values[code]; v != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", code, v))
		}
	}
	return strings.Join(parts, ",")
}
