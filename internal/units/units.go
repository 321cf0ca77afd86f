// Package units converts workout inputs into canonical form:
// seconds for duration, kilocalories for energy, kilometers for distance.
package units

import "math"

// KmPerMile is the conversion factor used for imperial distance input.
const KmPerMile = 1.60934

// MilesToKm converts a distance in miles to kilometers.
func MilesToKm(mi float64) float64 {
	return mi * KmPerMile
}

// TotalSeconds normalizes an hours/minutes/seconds decomposition to
// total seconds. Absent components are passed as zero.
func TotalSeconds(hours, minutes, seconds int) int64 {
	return int64(hours)*3600 + int64(minutes)*60 + int64(seconds)
}

// Round2 rounds to two decimal places, half away from zero. Distances are
// always stored through this so stored values match their display form.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
