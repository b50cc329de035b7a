package scroll

import "math"

// Ease is the cubic ease-in-out curve used for animated scrolling.
// p is clamped to [0, 1]; Ease(0) == 0 and Ease(1) == 1.
func Ease(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	case p < 0.5:
		return 4 * p * p * p
	default:
		return 1 - math.Pow(-2*p+2, 3)/2
	}
}

// interpolate returns the offset at eased progress e between from and
// from+distance, rounded to a whole line.
func interpolate(from, distance int, e float64) int {
	return from + int(math.Round(float64(distance)*e))
}
