package sanitizer

import "math"

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// RoundToDecimalPlaces rounds half away from zero. Negative places count as zero.
func RoundToDecimalPlaces[T Float](value T, places int) T {
	places = max(places, 0)
	multiplier := math.Pow(10, float64(places))
	return T(math.Round(float64(value)*multiplier) / multiplier)
}

// Money rounds a price to cents.
func Money(value float64) float64 {
	return RoundToDecimalPlaces(value, 2)
}

// ClampMin raises value to lower when it is below it.
func ClampMin[T int | int64 | float64](value, lower T) T {
	return max(value, lower)
}
