package in

import (
	"context"

	exercisedto "excalc/internal/modules/exercise/dto"
	exercisein "excalc/internal/modules/exercise/port/in"
)

type CLIHandler struct {
	usecase exercisein.Usecase
}

func NewCLIHandler(usecase exercisein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SwimmingStyles(ctx context.Context) ([]exercisedto.SwimmingStyleOutput, error) {
	return h.usecase.SwimmingStyles(ctx)
}
