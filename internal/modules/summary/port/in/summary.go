package in

import (
	"context"

	"excalc/internal/modules/summary/dto"
)

type Usecase interface {
	Build(ctx context.Context, records []dto.Record) (dto.Report, error)
	Render(ctx context.Context, records []dto.Record) error
}
