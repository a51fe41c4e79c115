// Package units converts the imperial measurements users type into the
// metric values the formulas expect.
package units

const (
	KilogramsPerPound  = 0.45359237
	KilometersPerMile  = 1.609344
	MinutesPerHour     = 60
	AcresPerSquareMile = 640
)

func PoundsToKilograms(lb float64) float64 { return lb * KilogramsPerPound }

func MilesToKilometers(mi float64) float64 { return mi * KilometersPerMile }

func MinutesToHours(min float64) float64 { return min / MinutesPerHour }

func SquareMilesToAcres(sqmi float64) float64 { return sqmi * AcresPerSquareMile }
