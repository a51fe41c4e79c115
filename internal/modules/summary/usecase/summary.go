package usecase

import (
	"context"

	"excalc/internal/modules/summary/dto"
	summaryin "excalc/internal/modules/summary/port/in"
	"excalc/internal/modules/summary/service"
)

type Interactor struct {
	renderer *service.Renderer
}

func NewInteractor(renderer *service.Renderer) summaryin.Usecase {
	return &Interactor{renderer: renderer}
}

func (i *Interactor) Build(_ context.Context, records []dto.Record) (dto.Report, error) {
	return i.renderer.Build(records), nil
}

func (i *Interactor) Render(ctx context.Context, records []dto.Record) error {
	report, err := i.Build(ctx, records)
	if err != nil {
		return err
	}
	return i.renderer.Write(report)
}
