package usecase

import (
	"context"
	"fmt"

	"excalc/internal/modules/exercise/domain"
	"excalc/internal/modules/exercise/dto"
	exercisein "excalc/internal/modules/exercise/port/in"
	exerciseout "excalc/internal/modules/exercise/port/out"
	"excalc/internal/modules/exercise/service"
	apperrors "excalc/internal/platform/errors"
)

type Interactor struct {
	svc               *service.CalculatorService
	prompter          exerciseout.Prompter
	treadmillQuestion bool
}

func NewInteractor(svc *service.CalculatorService, prompter exerciseout.Prompter, treadmillQuestion bool) exercisein.Usecase {
	return &Interactor{svc: svc, prompter: prompter, treadmillQuestion: treadmillQuestion}
}

func (i *Interactor) Requirements(_ context.Context, kind string) (dto.Requirements, error) {
	k := domain.Kind(kind)
	if err := k.Validate(); err != nil {
		return dto.Requirements{}, err
	}
	return dto.Requirements{Distance: k.NeedsDistance(), Duration: k.NeedsDuration()}, nil
}

func (i *Interactor) Calculate(ctx context.Context, input dto.CalculateInput) (dto.CalculateOutput, error) {
	kind := domain.Kind(input.Kind)
	if err := kind.Validate(); err != nil {
		return dto.CalculateOutput{}, err
	}
	switch kind {
	case domain.KindBiking:
		return i.biking(input)
	case domain.KindRunning:
		return i.running(ctx, input)
	default:
		return i.swimming(ctx, input)
	}
}

func (i *Interactor) SwimmingStyles(ctx context.Context) ([]dto.SwimmingStyleOutput, error) {
	catalog, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SwimmingStyleOutput, 0, catalog.Len())
	for idx := 0; idx < catalog.Len(); idx++ {
		style := catalog.At(idx)
		out = append(out, dto.SwimmingStyleOutput{Name: style.Name, MET: style.MET})
	}
	return out, nil
}

func (i *Interactor) biking(input dto.CalculateInput) (dto.CalculateOutput, error) {
	result, err := i.svc.Biking(input.WeightKg, input.DistanceMi, input.DurationHours)
	if err != nil {
		return dto.CalculateOutput{}, err
	}
	return dto.CalculateOutput{
		Kind:     input.Kind,
		Calories: result.Calories,
		Stats: []dto.Stat{
			{Label: "Metabolic Equivalent of Task", Value: result.MET},
			{Label: "Traced square area", Value: result.SquareAreaSqMi, Unit: "square miles"},
			{Label: "Traced square area", Value: result.SquareAreaAcres, Unit: "acres"},
		},
	}, nil
}

func (i *Interactor) running(ctx context.Context, input dto.CalculateInput) (dto.CalculateOutput, error) {
	if i.prompter == nil {
		return dto.CalculateOutput{}, fmt.Errorf("prompter is not configured")
	}
	age, err := i.prompter.Age(ctx)
	if err != nil {
		return dto.CalculateOutput{}, err
	}
	resting, err := i.prompter.RestingHeartRate(ctx)
	if err != nil {
		return dto.CalculateOutput{}, err
	}
	onTreadmill := false
	if i.treadmillQuestion {
		onTreadmill, err = i.prompter.OnTreadmill(ctx)
		if err != nil {
			return dto.CalculateOutput{}, err
		}
	}
	result, err := i.svc.Running(domain.RunningInput{
		WeightKg:        input.WeightKg,
		DistanceKm:      input.DistanceKm,
		AgeYears:        age,
		RestingHeartBPM: resting,
		OnTreadmill:     onTreadmill,
	})
	if err != nil {
		return dto.CalculateOutput{}, err
	}
	return dto.CalculateOutput{Kind: input.Kind, Calories: result.Calories}, nil
}

func (i *Interactor) swimming(ctx context.Context, input dto.CalculateInput) (dto.CalculateOutput, error) {
	if i.prompter == nil {
		return dto.CalculateOutput{}, fmt.Errorf("prompter is not configured")
	}
	catalog, err := i.svc.Catalog(ctx)
	if err != nil {
		return dto.CalculateOutput{}, err
	}
	idx, err := i.prompter.SwimmingStyle(ctx, catalog.Names())
	if err != nil {
		return dto.CalculateOutput{}, err
	}
	if idx < 0 || idx >= catalog.Len() {
		return dto.CalculateOutput{}, fmt.Errorf("style index %d: %w", idx, apperrors.ErrInvalidInput)
	}
	calories, err := i.svc.Swimming(input.WeightKg, input.DurationHours, catalog.At(idx))
	if err != nil {
		return dto.CalculateOutput{}, err
	}
	return dto.CalculateOutput{Kind: input.Kind, Calories: calories}, nil
}
