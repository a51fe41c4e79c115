package out

import (
	"context"

	"excalc/internal/modules/exercise/domain"
)

type StyleCatalog interface {
	Styles(ctx context.Context) ([]domain.SwimmingStyle, error)
}

// Prompter gathers the measurements a single exercise needs beyond weight,
// distance and duration.
type Prompter interface {
	Age(ctx context.Context) (float64, error)
	RestingHeartRate(ctx context.Context) (float64, error)
	OnTreadmill(ctx context.Context) (bool, error)
	SwimmingStyle(ctx context.Context, names []string) (int, error)
}
