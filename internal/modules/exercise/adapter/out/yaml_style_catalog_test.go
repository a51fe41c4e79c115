package out_test

import (
	"context"
	"testing"

	exerciseout "excalc/internal/modules/exercise/adapter/out"
)

func TestEmbeddedCatalogKeepsPublishedOrder(t *testing.T) {
	t.Parallel()
	catalog, err := exerciseout.NewEmbeddedStyleCatalog()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	styles, err := catalog.Styles(context.Background())
	if err != nil {
		t.Fatalf("styles: %v", err)
	}
	want := []struct {
		name string
		met  float64
	}{
		{"intense backstroke", 9.5},
		{"backstroke", 4.8},
		{"intense breaststroke", 10.3},
		{"breaststroke", 5.3},
		{"butterfly", 13.8},
		{"intense crawl", 10.0},
		{"crawl", 8.3},
		{"sidestroke", 7.0},
		{"high effort treading water", 9.8},
		{"treading water", 3.5},
	}
	if len(styles) != len(want) {
		t.Fatalf("expected %d styles, got %d", len(want), len(styles))
	}
	for i, w := range want {
		if styles[i].Name != w.name || styles[i].MET != w.met {
			t.Fatalf("style %d: expected %s=%v, got %s=%v", i, w.name, w.met, styles[i].Name, styles[i].MET)
		}
	}
}

func TestYAMLCatalogRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()
	if _, err := exerciseout.NewYAMLStyleCatalog([]byte("styles: [")); err == nil {
		t.Fatalf("malformed yaml must fail")
	}
	if _, err := exerciseout.NewYAMLStyleCatalog([]byte("styles: []\n")); err == nil {
		t.Fatalf("empty catalog must fail")
	}
	if _, err := exerciseout.NewYAMLStyleCatalog([]byte("styles:\n  - name: crawl\n    met: -1\n")); err == nil {
		t.Fatalf("negative MET must fail")
	}
}

func TestStylesReturnsCopy(t *testing.T) {
	t.Parallel()
	catalog, err := exerciseout.NewYAMLStyleCatalog([]byte("styles:\n  - name: crawl\n    met: 8.3\n"))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	first, _ := catalog.Styles(context.Background())
	first[0].MET = 99
	second, _ := catalog.Styles(context.Background())
	if second[0].MET != 8.3 {
		t.Fatalf("catalog must not be mutated through Styles, got %v", second[0].MET)
	}
}
