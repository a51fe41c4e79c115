package out

import (
	"context"

	exerciseout "excalc/internal/modules/exercise/port/out"
	promptdto "excalc/internal/modules/prompt/dto"
	promptin "excalc/internal/modules/prompt/port/in"
)

type PromptBridge struct {
	reader promptin.Reader
}

func NewPromptBridge(reader promptin.Reader) exerciseout.Prompter {
	return &PromptBridge{reader: reader}
}

func (b *PromptBridge) Age(ctx context.Context) (float64, error) {
	return b.reader.PositiveNumber(ctx, "Age (in years)?")
}

func (b *PromptBridge) RestingHeartRate(ctx context.Context) (float64, error) {
	return b.reader.PositiveNumber(ctx, "Resting heart rate (in BPM)?")
}

func (b *PromptBridge) OnTreadmill(ctx context.Context) (bool, error) {
	no := false
	return b.reader.YesNo(ctx, "On a treadmill?", &no)
}

func (b *PromptBridge) SwimmingStyle(ctx context.Context, names []string) (int, error) {
	return b.reader.OneOf(ctx, "Swimming style?", promptdto.NewOptionSet(names...))
}
