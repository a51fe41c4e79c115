package domain

import (
	"fmt"
	"strings"

	apperrors "excalc/internal/platform/errors"
)

type SwimmingStyle struct {
	Name string
	MET  float64
}

// StyleCatalog is the ordered name to MET mapping offered to swimmers.
type StyleCatalog struct {
	styles []SwimmingStyle
}

func NewStyleCatalog(styles []SwimmingStyle) (StyleCatalog, error) {
	if len(styles) == 0 {
		return StyleCatalog{}, fmt.Errorf("style catalog is empty: %w", apperrors.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(styles))
	out := make([]SwimmingStyle, 0, len(styles))
	for _, style := range styles {
		name := strings.ToLower(strings.TrimSpace(style.Name))
		if name == "" {
			return StyleCatalog{}, fmt.Errorf("style name is required: %w", apperrors.ErrInvalidInput)
		}
		if style.MET <= 0 {
			return StyleCatalog{}, fmt.Errorf("style %q MET must be positive: %w", name, apperrors.ErrInvalidInput)
		}
		if _, ok := seen[name]; ok {
			return StyleCatalog{}, fmt.Errorf("duplicate style %q: %w", name, apperrors.ErrInvalidInput)
		}
		seen[name] = struct{}{}
		out = append(out, SwimmingStyle{Name: name, MET: style.MET})
	}
	return StyleCatalog{styles: out}, nil
}

func (c StyleCatalog) Len() int { return len(c.styles) }

func (c StyleCatalog) At(i int) SwimmingStyle { return c.styles[i] }

func (c StyleCatalog) Names() []string {
	names := make([]string, 0, len(c.styles))
	for _, style := range c.styles {
		names = append(names, style.Name)
	}
	return names
}
