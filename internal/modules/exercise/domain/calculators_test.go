package domain_test

import (
	"errors"
	"math"
	"testing"

	"excalc/internal/modules/exercise/domain"
	apperrors "excalc/internal/platform/errors"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestClamp(t *testing.T) {
	t.Parallel()
	cases := []struct {
		low, x, high, want float64
	}{
		{low: 1, x: 5, high: 10, want: 5},
		{low: 1, x: 100, high: 10, want: 10},
		{low: 1, x: -100, high: 10, want: 1},
		{low: 4, x: 4, high: 16, want: 4},
		{low: 4, x: 16, high: 16, want: 16},
		{low: 2, x: 3, high: 2, want: 2},
	}
	for _, tc := range cases {
		if got := domain.Clamp(tc.low, tc.x, tc.high); got != tc.want {
			t.Fatalf("Clamp(%v, %v, %v): expected %v, got %v", tc.low, tc.x, tc.high, tc.want, got)
		}
	}
}

func TestBiking(t *testing.T) {
	t.Parallel()
	got := domain.Biking(70, 20, 1)
	if got.SpeedMPH != 20 || got.MET != 15 {
		t.Fatalf("expected speed 20 and MET 15, got %+v", got)
	}
	if got.Calories != 1050 {
		t.Fatalf("expected 1050 calories, got %v", got.Calories)
	}
	if got.SquareSideMi != 5 || got.SquareAreaSqMi != 25 || got.SquareAreaAcres != 16000 {
		t.Fatalf("unexpected traced square %+v", got)
	}

	slow := domain.Biking(70, 3, 1)
	if slow.MET != 4 {
		t.Fatalf("expected MET floor 4, got %v", slow.MET)
	}
	fast := domain.Biking(70, 30, 1)
	if fast.MET != 16 {
		t.Fatalf("expected MET ceiling 16, got %v", fast.MET)
	}
}

func TestRunning(t *testing.T) {
	t.Parallel()
	in := domain.RunningInput{WeightKg: 70, DistanceKm: 10, AgeYears: 30, RestingHeartBPM: 60}
	got := domain.Running(in)
	if !almostEqual(got.MaxHeartBPM, 187, 1e-9) {
		t.Fatalf("expected max heart 187, got %v", got.MaxHeartBPM)
	}
	if !almostEqual(got.VO2Max, 47.685, 1e-9) {
		t.Fatalf("expected VO2 max 47.685, got %v", got.VO2Max)
	}
	if !almostEqual(got.FitnessFactor, 1.046575, 1e-9) {
		t.Fatalf("expected fitness 1.046575, got %v", got.FitnessFactor)
	}
	if got.AirResistance != 0.84 {
		t.Fatalf("expected outdoor air resistance, got %v", got.AirResistance)
	}
	if !almostEqual(got.Calories, 704.76, 0.01) {
		t.Fatalf("expected about 704.76 calories, got %v", got.Calories)
	}

	in.OnTreadmill = true
	treadmill := domain.Running(in)
	if treadmill.AirResistance != 0 || !almostEqual(treadmill.Calories, 66.5*10*1.046575, 1e-6) {
		t.Fatalf("unexpected treadmill result %+v", treadmill)
	}
}

func TestRunningFitnessFactorBounds(t *testing.T) {
	t.Parallel()
	// A low VO2 max would give more than 1.07 and is pulled down to it.
	low := domain.Running(domain.RunningInput{WeightKg: 70, DistanceKm: 1, AgeYears: 30, RestingHeartBPM: 200})
	if low.FitnessFactor != 1.07 {
		t.Fatalf("expected fitness 1.07, got %v", low.FitnessFactor)
	}
	// A very high VO2 max would drop below 1 and is raised to 1.
	high := domain.Running(domain.RunningInput{WeightKg: 70, DistanceKm: 1, AgeYears: 20, RestingHeartBPM: 20})
	if high.FitnessFactor != 1 {
		t.Fatalf("expected fitness 1, got %v", high.FitnessFactor)
	}
}

func TestSwimming(t *testing.T) {
	t.Parallel()
	if got := domain.Swimming(70, 0.5, 13.8); !almostEqual(got, 483, 1e-9) {
		t.Fatalf("expected 483 calories, got %v", got)
	}
}

func TestKind(t *testing.T) {
	t.Parallel()
	if err := domain.Kind("rowing").Validate(); !errors.Is(err, apperrors.ErrUnknownExercise) {
		t.Fatalf("expected unknown exercise, got %v", err)
	}
	if !domain.KindBiking.NeedsDistance() || !domain.KindBiking.NeedsDuration() {
		t.Fatalf("biking needs distance and duration")
	}
	if !domain.KindRunning.NeedsDistance() || domain.KindRunning.NeedsDuration() {
		t.Fatalf("running needs distance only")
	}
	if domain.KindSwimming.NeedsDistance() || !domain.KindSwimming.NeedsDuration() {
		t.Fatalf("swimming needs duration only")
	}
}
