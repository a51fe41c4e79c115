package in

import (
	"context"

	"excalc/internal/modules/exercise/dto"
)

type Usecase interface {
	Requirements(ctx context.Context, kind string) (dto.Requirements, error)
	Calculate(ctx context.Context, input dto.CalculateInput) (dto.CalculateOutput, error)
	SwimmingStyles(ctx context.Context) ([]dto.SwimmingStyleOutput, error)
}
