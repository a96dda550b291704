package tables

import "math"

// mantissas is one decade of the universal bonus table. Bonus b maps to
// mantissas[b mod 20] * 10^(b div 20); every +20 bonus multiplies the value by ten.
var mantissas = [20]float64{
	1, 1.1, 1.2, 1.4, 1.6, 1.8, 2, 2.2, 2.5, 2.8,
	3.2, 3.5, 4, 4.5, 5, 5.6, 6.3, 7, 8, 9,
}

// bonusToValue is total over all integers.
func bonusToValue(bonus int) float64 {
	decade, rem := bonus/20, bonus%20
	if rem < 0 {
		rem += 20
		decade--
	}
	return mantissas[rem] * math.Pow10(decade)
}

// valueToBonus returns the bonus whose value is nearest to v on a logarithmic
// scale; ties resolve to the lower bonus.
//
// Precondition: v > 0.
func valueToBonus(v float64) int {
	decade := int(math.Floor(math.Log10(v)))
	m := v / math.Pow10(decade)
	best, bestDiff := 0, math.Inf(1)
	for i := 0; i <= len(mantissas); i++ {
		candidate := 10.0
		if i < len(mantissas) {
			candidate = mantissas[i]
		}
		diff := math.Abs(math.Log(m / candidate))
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return decade*20 + best
}
