// Package dice rolls the dice expressions used to determine properties by fate.
package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Expression is a parsed "NdS+M" dice expression.
//
// Invariant: Count >= 1 and Sides >= 2 after a successful Parse.
type Expression struct {
	Raw      string
	Count    int
	Sides    int
	Modifier int
}

// Upper bounds of a parsed expression.
const (
	MaxCount    = 100
	MaxSides    = 1000
	MaxModifier = 1000
)

var expressionPattern = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// Parse reads expressions such as "d6", "1d3", "2d6+1" or "1d3-1".
//
// Postcondition: Returns a valid Expression or a descriptive error.
// Count is in [1, MaxCount], Sides in [2, MaxSides] and |Modifier| <= MaxModifier.
func Parse(expr string) (Expression, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	m := expressionPattern.FindStringSubmatch(s)
	if m == nil {
		return Expression{}, fmt.Errorf("dice: invalid expression %q", expr)
	}

	count := 1
	if m[1] != "" {
		var err error
		count, err = strconv.Atoi(m[1])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", expr, err)
		}
	}
	if count < 1 || count > MaxCount {
		return Expression{}, fmt.Errorf("dice: die count in %q must be in [1, %d]", expr, MaxCount)
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", expr, err)
	}
	if sides < 2 || sides > MaxSides {
		return Expression{}, fmt.Errorf("dice: die sides in %q must be in [2, %d]", expr, MaxSides)
	}
	modifier := 0
	if m[3] != "" {
		modifier, err = strconv.Atoi(m[3])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", expr, err)
		}
	}
	if modifier < -MaxModifier || modifier > MaxModifier {
		return Expression{}, fmt.Errorf("dice: modifier in %q must be in [-%d, %d]", expr, MaxModifier, MaxModifier)
	}
	return Expression{Raw: s, Count: count, Sides: sides, Modifier: modifier}, nil
}

// Result is the audit trail of one rolled expression.
type Result struct {
	Expression string
	Dice       []int
	Modifier   int
}

// Total returns the sum of the dice plus the modifier.
func (r Result) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String renders the result as "2d6+1 [4 5] +1 = 10".
func (r Result) String() string {
	return fmt.Sprintf("%s %v %+d = %d", r.Expression, r.Dice, r.Modifier, r.Total())
}

// Roll evaluates expr with src.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count and each die is in [1, expr.Sides].
func Roll(expr Expression, src Source) Result {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}
	return Result{Expression: expr.Raw, Dice: rolled, Modifier: expr.Modifier}
}
