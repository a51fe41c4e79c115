package service

import (
	"context"
	"fmt"

	"excalc/internal/modules/exercise/domain"
	exerciseout "excalc/internal/modules/exercise/port/out"
	apperrors "excalc/internal/platform/errors"
)

type CalculatorService struct {
	catalog exerciseout.StyleCatalog
}

func NewCalculatorService(catalog exerciseout.StyleCatalog) *CalculatorService {
	return &CalculatorService{catalog: catalog}
}

func (s *CalculatorService) Catalog(ctx context.Context) (domain.StyleCatalog, error) {
	if s.catalog == nil {
		return domain.StyleCatalog{}, fmt.Errorf("style catalog is not configured")
	}
	styles, err := s.catalog.Styles(ctx)
	if err != nil {
		return domain.StyleCatalog{}, err
	}
	return domain.NewStyleCatalog(styles)
}

func (s *CalculatorService) Biking(weightKg, distanceMi, durationHours float64) (domain.BikingResult, error) {
	if err := requirePositive(weightKg, distanceMi, durationHours); err != nil {
		return domain.BikingResult{}, err
	}
	return domain.Biking(weightKg, distanceMi, durationHours), nil
}

func (s *CalculatorService) Running(input domain.RunningInput) (domain.RunningResult, error) {
	if err := requirePositive(input.WeightKg, input.DistanceKm, input.AgeYears, input.RestingHeartBPM); err != nil {
		return domain.RunningResult{}, err
	}
	return domain.Running(input), nil
}

func (s *CalculatorService) Swimming(weightKg, durationHours float64, style domain.SwimmingStyle) (float64, error) {
	if err := requirePositive(weightKg, durationHours, style.MET); err != nil {
		return 0, err
	}
	return domain.Swimming(weightKg, durationHours, style.MET), nil
}

func requirePositive(values ...float64) error {
	for _, v := range values {
		if !(v > 0) {
			return fmt.Errorf("measurement %v must be positive: %w", v, apperrors.ErrInvalidInput)
		}
	}
	return nil
}
