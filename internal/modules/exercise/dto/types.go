package dto

type CalculateInput struct {
	Kind          string
	WeightKg      float64
	DistanceMi    float64
	DistanceKm    float64
	DurationHours float64
}

// Stat is a labelled figure shown while an exercise is being calculated.
type Stat struct {
	Label string
	Value float64
	Unit  string
}

type CalculateOutput struct {
	Kind     string
	Calories float64
	Stats    []Stat
}

type Requirements struct {
	Distance bool
	Duration bool
}

type SwimmingStyleOutput struct {
	Name string
	MET  float64
}
