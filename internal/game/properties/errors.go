package properties

import "fmt"

// TooLowStrengthAdjustment is returned when the strength granted by talents and
// the first profession level is negative, so no size modifier exists for it.
type TooLowStrengthAdjustment struct {
	Adjustment int
}

func (e *TooLowStrengthAdjustment) Error() string {
	return fmt.Sprintf("strength adjustment for size must not be negative, got %d", e.Adjustment)
}
