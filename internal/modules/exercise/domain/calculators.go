package domain

import "excalc/internal/platform/units"

// 1 MET is roughly one calorie per kilogram of body weight per hour.
const (
	BikingMETFloor   = 4
	BikingMETCeiling = 16
	BikingMETOffset  = 5

	MaxHeartBase      = 208
	MaxHeartAgeFactor = 0.7
	VO2MaxFactor      = 15.3
	FitnessBase       = 1.285
	FitnessSlope      = 0.005
	FitnessLow        = 1
	FitnessHigh       = 1.07
	RunningWeightRate = 0.95
	AirResistance     = 0.84
)

type BikingResult struct {
	SpeedMPH        float64
	MET             float64
	SquareSideMi    float64
	SquareAreaSqMi  float64
	SquareAreaAcres float64
	Calories        float64
}

// Biking estimates calories from weight (kg), distance (mi) and duration (hr).
// The traced square treats the distance as the perimeter of a square.
func Biking(weightKg, distanceMi, durationHours float64) BikingResult {
	speed := distanceMi / durationHours
	met := Clamp(BikingMETFloor, speed-BikingMETOffset, BikingMETCeiling)
	side := distanceMi / 4
	area := side * side
	return BikingResult{
		SpeedMPH:        speed,
		MET:             met,
		SquareSideMi:    side,
		SquareAreaSqMi:  area,
		SquareAreaAcres: units.SquareMilesToAcres(area),
		Calories:        durationHours * met * weightKg,
	}
}

type RunningInput struct {
	WeightKg        float64
	DistanceKm      float64
	AgeYears        float64
	RestingHeartBPM float64
	OnTreadmill     bool
}

type RunningResult struct {
	MaxHeartBPM   float64
	VO2Max        float64
	FitnessFactor float64
	AirResistance float64
	Calories      float64
}

// Running estimates calories for a run. The fitness factor bounds are kept
// exactly as published: anything above 1.07 is pulled down to 1.07.
func Running(in RunningInput) RunningResult {
	maxHeart := MaxHeartBase - MaxHeartAgeFactor*in.AgeYears
	vo2 := VO2MaxFactor * maxHeart / in.RestingHeartBPM
	fitness := Clamp(FitnessLow, FitnessBase-FitnessSlope*vo2, FitnessHigh)
	air := AirResistance
	if in.OnTreadmill {
		air = 0
	}
	return RunningResult{
		MaxHeartBPM:   maxHeart,
		VO2Max:        vo2,
		FitnessFactor: fitness,
		AirResistance: air,
		Calories:      (RunningWeightRate*in.WeightKg + air) * in.DistanceKm * fitness,
	}
}

func Swimming(weightKg, durationHours, styleMET float64) float64 {
	return durationHours * styleMET * weightKg
}
