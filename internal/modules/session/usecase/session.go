package usecase

import (
	"context"
	"errors"
	"fmt"

	exercisedto "excalc/internal/modules/exercise/dto"
	exercisein "excalc/internal/modules/exercise/port/in"
	promptdto "excalc/internal/modules/prompt/dto"
	promptin "excalc/internal/modules/prompt/port/in"
	"excalc/internal/modules/session/domain"
	sessiondto "excalc/internal/modules/session/dto"
	sessionin "excalc/internal/modules/session/port/in"
	sessionout "excalc/internal/modules/session/port/out"
	"excalc/internal/modules/session/service"
	summarydto "excalc/internal/modules/summary/dto"
	summaryin "excalc/internal/modules/summary/port/in"
	apperrors "excalc/internal/platform/errors"
	"excalc/internal/platform/units"
)

const notRecorded = "That result is too large to be a real exercise, so it was not recorded."

type Interactor struct {
	svc       *service.SessionService
	prompt    promptin.Reader
	exercises exercisein.Usecase
	summary   summaryin.Usecase
	display   sessionout.Display
}

func NewInteractor(
	svc *service.SessionService,
	prompt promptin.Reader,
	exercises exercisein.Usecase,
	summary summaryin.Usecase,
	display sessionout.Display,
) sessionin.Usecase {
	return &Interactor{svc: svc, prompt: prompt, exercises: exercises, summary: summary, display: display}
}

// Run asks for commands until exit or end of input, then prints the summary.
func (i *Interactor) Run(ctx context.Context) (sessiondto.RunOutput, error) {
	commands := i.svc.Commands()
	if err := i.display.Banner(ctx, domain.Title, commands); err != nil {
		return sessiondto.RunOutput{}, err
	}
	options := promptdto.NewOptionSet(commands...)
	tally := &domain.Tally{}
	closed := false

loop:
	for {
		if err := i.display.Blank(ctx); err != nil {
			return sessiondto.RunOutput{}, err
		}
		idx, err := i.prompt.OneOf(ctx, "Command?", options)
		if errors.Is(err, apperrors.ErrInputClosed) {
			closed = true
			break
		}
		if err != nil {
			return sessiondto.RunOutput{}, err
		}
		command := commands[idx]
		switch {
		case command == domain.CommandExit:
			break loop
		case i.svc.ListsStyles(command):
			if err := i.listStyles(ctx); err != nil {
				return sessiondto.RunOutput{}, err
			}
			continue
		}

		calories, err := i.runExercise(ctx, command)
		if errors.Is(err, apperrors.ErrInputClosed) {
			closed = true
			break
		}
		if err != nil {
			return sessiondto.RunOutput{}, err
		}
		if _, err := i.svc.Record(tally, command, calories); err != nil {
			if !errors.Is(err, apperrors.ErrInvalidInput) {
				return sessiondto.RunOutput{}, err
			}
			if err := i.display.Notice(ctx, notRecorded); err != nil {
				return sessiondto.RunOutput{}, err
			}
		}
	}

	records := tally.Records()
	summaryRecords := make([]summarydto.Record, 0, len(records))
	out := sessiondto.RunOutput{Closed: closed, Records: make([]sessiondto.RecordOutput, 0, len(records))}
	for _, record := range records {
		summaryRecords = append(summaryRecords, summarydto.Record{Command: record.Command, Calories: record.Calories})
		out.Records = append(out.Records, sessiondto.RecordOutput{Command: record.Command, Calories: record.Calories})
	}
	if err := i.summary.Render(ctx, summaryRecords); err != nil {
		return sessiondto.RunOutput{}, err
	}
	return out, nil
}

func (i *Interactor) listStyles(ctx context.Context) error {
	styles, err := i.exercises.SwimmingStyles(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(styles))
	for _, style := range styles {
		names = append(names, style.Name)
	}
	return i.display.List(ctx, "Swimming styles:", names)
}

func (i *Interactor) runExercise(ctx context.Context, command string) (float64, error) {
	needs, err := i.exercises.Requirements(ctx, command)
	if err != nil {
		return 0, err
	}

	weightLb, err := i.prompt.PositiveNumber(ctx, "Weight (in pounds)?")
	if err != nil {
		return 0, err
	}
	input := exercisedto.CalculateInput{Kind: command, WeightKg: units.PoundsToKilograms(weightLb)}
	if err := i.display.Stat(ctx, "Weight", input.WeightKg, "kilograms"); err != nil {
		return 0, err
	}

	if needs.Distance {
		input.DistanceMi, err = i.prompt.PositiveNumber(ctx, "Distance (in miles)?")
		if err != nil {
			return 0, err
		}
		input.DistanceKm = units.MilesToKilometers(input.DistanceMi)
		if err := i.display.Stat(ctx, "Distance", input.DistanceKm, "kilometers"); err != nil {
			return 0, err
		}
	}
	if needs.Duration {
		minutes, err := i.prompt.PositiveNumber(ctx, "Duration (in minutes)?")
		if err != nil {
			return 0, err
		}
		input.DurationHours = units.MinutesToHours(minutes)
	}

	result, err := i.exercises.Calculate(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("calculate %s: %w", command, err)
	}
	for _, stat := range result.Stats {
		if err := i.display.Stat(ctx, stat.Label, stat.Value, stat.Unit); err != nil {
			return 0, err
		}
	}
	if err := i.display.Stat(ctx, "Calories burned", result.Calories, "calories"); err != nil {
		return 0, err
	}
	return result.Calories, nil
}
