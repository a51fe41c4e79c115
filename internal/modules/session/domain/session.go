package domain

import (
	"fmt"
	"math"

	apperrors "excalc/internal/platform/errors"
)

const Title = "Exercise Calculator"

const (
	CommandBiking         = "biking"
	CommandRunning        = "running"
	CommandSwimming       = "swimming"
	CommandSwimmingStyles = "swimming styles"
	CommandExit           = "exit"
)

// Commands returns the top-level commands in the order they are listed.
func Commands(optionsListing bool) []string {
	commands := []string{CommandBiking, CommandRunning, CommandSwimming}
	if optionsListing {
		commands = append(commands, CommandSwimmingStyles)
	}
	return append(commands, CommandExit)
}

func IsExercise(command string) bool {
	switch command {
	case CommandBiking, CommandRunning, CommandSwimming:
		return true
	default:
		return false
	}
}

// MaxCalories bounds a single record so its bar and the total stay printable.
const MaxCalories = 1_000_000

// Record is one completed exercise. Records are never modified once appended.
type Record struct {
	Command  string
	Calories float64
}

func (r Record) Validate() error {
	if !IsExercise(r.Command) {
		return fmt.Errorf("record command %q: %w", r.Command, apperrors.ErrUnknownExercise)
	}
	if math.IsNaN(r.Calories) || r.Calories <= 0 {
		return fmt.Errorf("record calories %v must be positive: %w", r.Calories, apperrors.ErrInvalidInput)
	}
	if r.Calories > MaxCalories {
		return fmt.Errorf("record calories %v exceed %d: %w", r.Calories, MaxCalories, apperrors.ErrInvalidInput)
	}
	return nil
}

// Tally is the ordered list of records kept for one session.
type Tally struct {
	records []Record
}

func (t *Tally) Append(r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	t.records = append(t.records, r)
	return nil
}

func (t *Tally) Len() int { return len(t.records) }

func (t *Tally) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}
