package domain

import (
	"fmt"
	"math"

	apperrors "excalc/internal/platform/errors"
)

type Kind string

const (
	KindBiking   Kind = "biking"
	KindRunning  Kind = "running"
	KindSwimming Kind = "swimming"
)

func (k Kind) Validate() error {
	switch k {
	case KindBiking, KindRunning, KindSwimming:
		return nil
	default:
		return fmt.Errorf("%q: %w", string(k), apperrors.ErrUnknownExercise)
	}
}

// NeedsDistance reports whether the caller must gather a distance.
func (k Kind) NeedsDistance() bool { return k == KindBiking || k == KindRunning }

// NeedsDuration reports whether the caller must gather a duration.
func (k Kind) NeedsDuration() bool { return k == KindBiking || k == KindSwimming }

// Clamp returns min(max(low, x), high). low must not exceed high.
func Clamp(low, x, high float64) float64 {
	return math.Min(math.Max(low, x), high)
}
