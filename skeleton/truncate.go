package skeleton

import "math"

// TruncatePlaces number of decimal places kept by Truncate
const TruncatePlaces = 6

// Truncate rounds the given float value to TruncatePlaces decimal places.
// Values whose rounded magnitude does not exceed 10^-TruncatePlaces collapse
// to exactly +0.0 to prevent -0.0 artifacts in the serialized output.
func Truncate(value float64) float64 {
	shift := math.Pow10(TruncatePlaces)
	value = math.Round(value*shift) / shift
	if math.Abs(value) <= 1/shift {
		value = 0.0
	}
	return value
}
