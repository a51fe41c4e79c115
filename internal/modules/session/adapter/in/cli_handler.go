package in

import (
	"context"

	sessiondto "excalc/internal/modules/session/dto"
	sessionin "excalc/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context) (sessiondto.RunOutput, error) {
	return h.usecase.Run(ctx)
}
