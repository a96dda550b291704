package fate

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/drdsheet/internal/game/dice"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
)

// Roller parses and rolls a dice expression.
type Roller interface {
	RollExpr(expr string) (dice.Result, error)
}

// Roll reads "strength=1d3-1,agility=1d3" and rolls each expression with r.
// A property named twice rolls twice and sums. An empty string yields no talents.
//
// Precondition: r must be non-nil.
// Postcondition: Returns the rolled Properties or the first parse error.
func Roll(s string, r Roller) (Properties, error) {
	values := make(map[property.Code]int)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, raw, ok := strings.Cut(part, "=")
		if !ok {
			return Properties{}, fmt.Errorf("fate: expected name=dice, got %q", part)
		}
		code, err := property.ParseCode(name)
		if err != nil {
			return Properties{}, fmt.Errorf("fate: %w", err)
		}
		result, err := r.RollExpr(raw)
		if err != nil {
			return Properties{}, fmt.Errorf("fate: %s: %w", code, err)
		}
		values[code] += result.Total()
	}
	return Properties{values: values}, nil
}

// Add returns the sum of p and other per property.
func (p Properties) Add(other Properties) Properties {
	out := make(map[property.Code]int, len(p.values)+len(other.values))
	for code, v := range p.values {
		out[code] += v
	}
	for code, v := range other.values {
		out[code] += v
	}
	return Properties{values: out}
}
