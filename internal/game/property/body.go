package property

// WeightInKg is a body weight, or a weight adjustment, in kilograms.
type WeightInKg float64

// HeightInCm is a body height, or a height adjustment, in centimetres.
type HeightInCm float64

// Meters converts the height to metres.
func (h HeightInCm) Meters() float64 {
	return float64(h) / 100
}

// Height is the distance bonus of a body height.
type Height int

// Size is the body size property.
type Size int

// Age is the character age in years.
type Age int
