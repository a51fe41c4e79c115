package out

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"excalc/internal/modules/exercise/domain"
	exerciseout "excalc/internal/modules/exercise/port/out"
)

//go:embed swimming_styles.yaml
var embeddedStyles []byte

type styleDocument struct {
	Styles []struct {
		Name string  `yaml:"name"`
		MET  float64 `yaml:"met"`
	} `yaml:"styles"`
}

type YAMLStyleCatalog struct {
	catalog domain.StyleCatalog
}

// NewEmbeddedStyleCatalog parses the catalog compiled into the binary.
func NewEmbeddedStyleCatalog() (exerciseout.StyleCatalog, error) {
	return NewYAMLStyleCatalog(embeddedStyles)
}

func NewYAMLStyleCatalog(raw []byte) (exerciseout.StyleCatalog, error) {
	var doc styleDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode swimming styles: %w", err)
	}
	styles := make([]domain.SwimmingStyle, 0, len(doc.Styles))
	for _, item := range doc.Styles {
		styles = append(styles, domain.SwimmingStyle{Name: item.Name, MET: item.MET})
	}
	catalog, err := domain.NewStyleCatalog(styles)
	if err != nil {
		return nil, fmt.Errorf("load swimming styles: %w", err)
	}
	return &YAMLStyleCatalog{catalog: catalog}, nil
}

func (c *YAMLStyleCatalog) Styles(_ context.Context) ([]domain.SwimmingStyle, error) {
	out := make([]domain.SwimmingStyle, 0, c.catalog.Len())
	for i := 0; i < c.catalog.Len(); i++ {
		out = append(out, c.catalog.At(i))
	}
	return out, nil
}
