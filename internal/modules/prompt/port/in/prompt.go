package in

import (
	"context"

	"excalc/internal/modules/prompt/dto"
)

// Reader keeps asking until the answer satisfies the rule. The only errors
// returned are ErrInputClosed and context errors.
type Reader interface {
	PositiveNumber(ctx context.Context, label string) (float64, error)
	OneOf(ctx context.Context, label string, options dto.OptionSet) (int, error)
	YesNo(ctx context.Context, label string, def *bool) (bool, error)
}
