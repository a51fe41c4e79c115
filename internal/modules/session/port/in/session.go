package in

import (
	"context"

	"excalc/internal/modules/session/dto"
)

type Usecase interface {
	Run(ctx context.Context) (dto.RunOutput, error)
}
