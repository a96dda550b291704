package tables

import "math"

// MinDistanceBonus is the bonus reported for non-positive lengths (one centimetre).
const MinDistanceBonus = -40

// DistanceTable converts between distances in metres and distance bonuses.
type DistanceTable struct{}

// ToMeters returns the distance in metres for a distance bonus.
func (DistanceTable) ToMeters(bonus int) float64 {
	return bonusToValue(bonus)
}

// ToBonus returns the distance bonus nearest to the given length in metres.
//
// Postcondition: Returns MinDistanceBonus when meters <= 0.
func (DistanceTable) ToBonus(meters float64) int {
	if meters <= 0 {
		return MinDistanceBonus
	}
	b := valueToBonus(meters)
	if b < MinDistanceBonus {
		return MinDistanceBonus
	}
	return b
}

// WoundsTable converts a wounds bonus into a number of wounds.
type WoundsTable struct{}

// ToWounds returns the rounded wounds value for bonus.
func (WoundsTable) ToWounds(bonus int) int {
	return int(math.Round(bonusToValue(bonus)))
}

// FatigueTable converts a fatigue bonus into a number of fatigue points.
type FatigueTable struct{}

// ToFatigue returns the rounded fatigue value for bonus.
func (FatigueTable) ToFatigue(bonus int) int {
	return int(math.Round(bonusToValue(bonus)))
}
