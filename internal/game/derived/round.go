package derived

import "math"

// Rounding follows the sheet rules: half away from zero unless stated otherwise.

func average(a, b int) int {
	return int(math.Round(float64(a+b) / 2))
}

func half(v int) int {
	return int(math.Round(float64(v) / 2))
}

func flooredHalf(v int) int {
	return int(math.Floor(float64(v) / 2))
}

func ceiledHalf(v int) int {
	return int(math.Ceil(float64(v) / 2))
}

func ceiledThird(v int) int {
	return int(math.Ceil(float64(v) / 3))
}

func roundedThird(v int) int {
	return int(math.Round(float64(v) / 3))
}
